// SPDX-License-Identifier: MIT

// Package matrix provides the row-major Dense float64 matrix used to carry
// numeric tables and synthetic correlation structures.
//
// What:
//
//   - Dense: a flat, row-major buffer with bounds-checked At/Set.
//   - NewDense / NewDenseFrom: strict constructors (shape validated before allocation).
//   - Row / Col / Clone: copy-out accessors; callers never alias the backing slice.
//   - AllClose / ColSums / RowSums / NonZero: small numeric helpers used by
//     simulation code and tests.
//
// Why:
//
//	Block- and band-diagonal generators and numeric table exports need one
//	predictable container with zero-initialised storage, so that "outside the
//	support" means exactly 0.0.
//
// Determinism:
//
//	All loops run i→j in fixed order; no map iteration; no hidden randomness.
//
// Errors:
//
//   - ErrInvalidDimensions  non-positive rows/cols, or data length mismatch.
//   - ErrIndexOutOfBounds   At/Set/Row/Col outside the shape.
//   - ErrDimensionMismatch  binary helpers on different shapes.
//   - ErrNilMatrix          nil operand.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set O(1); Clone O(r*c); AllClose O(r*c).
package matrix
