// SPDX-License-Identifier: MIT

// Package simulate generates structured random data for tests and
// simulations: block- and band-diagonal matrices and random coalescent trees.
//
// Randomness always comes from an explicit math/rand/v2 generator. Without
// WithSeed or WithRand each call starts from the same fixed seed, so output
// is reproducible by default. Distributions are drawn through
// gonum.org/v1/gonum/stat/distuv.
//
// Invalid shapes, block counts, band widths and leaf counts are reported as
// ErrStructuralMismatch, the same sentinel the align package uses.
package simulate
