// SPDX-License-Identifier: MIT
// Package: lvalign/simulate
//
// block.go: block-diagonal matrices.

package simulate

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvalign/matrix"
)

// minBlocks is the smallest block count that is still block-diagonal.
const minBlocks = 2

// BlockDiagonal returns a rows×cols matrix made of blocks contiguous,
// non-overlapping diagonal blocks filled with independent Uniform[0,1)
// draws. Every entry outside the blocks is exactly 0.
//
// MAIN DESCRIPTION:
//   - rows and cols are each split into blocks partitions as evenly as
//     possible; the remainder goes to the earliest partitions. Block k spans
//     row partition k and column partition k.
//
// Implementation:
//   - Stage 1: validate blocks (before any allocation), then dimensions.
//   - Stage 2: allocate a zero matrix.
//   - Stage 3: fill block by block, row-major inside a block.
//
// Errors:
//   - ErrStructuralMismatch if blocks < 2, rows or cols < 1, or
//     blocks > min(rows, cols).
//
// Complexity: O(rows*cols) time and space.
func BlockDiagonal(rows, cols, blocks int, opts ...Option) (*matrix.Dense, error) {
	// Stage 1: validate
	if blocks < minBlocks {
		return nil, mismatchf(methodBlockDiagonal, "need at least %d blocks, got %d", minBlocks, blocks)
	}
	if rows < 1 || cols < 1 {
		return nil, mismatchf(methodBlockDiagonal, "dimensions must be positive, got %dx%d", rows, cols)
	}
	if blocks > rows || blocks > cols {
		return nil, mismatchf(methodBlockDiagonal, "%d blocks do not fit a %dx%d matrix", blocks, rows, cols)
	}
	cfg := newConfig(opts...)

	// Stage 2: zero matrix
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	// Stage 3: fill
	unif := distuv.Uniform{Min: 0, Max: 1, Src: cfg.rng}
	rowSizes, colSizes := partition(rows, blocks), partition(cols, blocks)
	r0, c0 := 0, 0
	for k := 0; k < blocks; k++ {
		for i := r0; i < r0+rowSizes[k]; i++ {
			for j := c0; j < c0+colSizes[k]; j++ {
				if err = m.Set(i, j, unif.Rand()); err != nil {
					return nil, err
				}
			}
		}
		r0 += rowSizes[k]
		c0 += colSizes[k]
	}
	cfg.logger.V(1).Info("block diagonal generated",
		"rows", rows, "cols", cols, "blocks", blocks)

	return m, nil
}

// partition splits n into parts sizes, the first n%parts one larger.
func partition(n, parts int) []int {
	base, rem := n/parts, n%parts
	out := make([]int, parts)
	for k := range out {
		out[k] = base
		if k < rem {
			out[k]++
		}
	}

	return out
}
