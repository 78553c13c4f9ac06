// SPDX-License-Identifier: MIT
// Package: lvalign/simulate
//
// band.go: band-diagonal mixing matrices.

package simulate

import (
	"github.com/katalvlaran/lvalign/matrix"
)

// BandDiagonal returns an n×(n−bandWidth+1) matrix whose column j holds
// 1/bandWidth in rows j..j+bandWidth−1 and 0 elsewhere: a band of constant
// weight sliding down one row per column. Each column sums to 1.
//
// Errors:
//   - ErrStructuralMismatch if bandWidth < 1 or bandWidth > n.
//
// Complexity: O(n*(n−bandWidth+1)).
func BandDiagonal(n, bandWidth int, opts ...Option) (*matrix.Dense, error) {
	if bandWidth < 1 || bandWidth > n {
		return nil, mismatchf(methodBandDiagonal, "band width %d outside [1,%d]", bandWidth, n)
	}
	cfg := newConfig(opts...)

	cols := n - bandWidth + 1
	m, err := matrix.NewDense(n, cols)
	if err != nil {
		return nil, err
	}
	w := 1 / float64(bandWidth)
	for j := 0; j < cols; j++ {
		for i := j; i < j+bandWidth; i++ {
			if err = m.Set(i, j, w); err != nil {
				return nil, err
			}
		}
	}
	cfg.logger.V(1).Info("band diagonal generated", "rows", n, "cols", cols, "bandWidth", bandWidth)

	return m, nil
}
