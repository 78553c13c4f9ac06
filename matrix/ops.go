// SPDX-License-Identifier: MIT
// Package: lvalign/matrix
//
// ops.go: small numeric helpers.
//
// Policy:
//   - Inputs are validated (nil, shape) before any loop runs.
//   - *Dense operands take a flat-slice fast path; other Matrix
//     implementations fall back to bounds-safe At.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := validateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar kernel of AllClose.
func closeEnough(a, b, rtol, atol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if isNil(m) {
		return nil, matrixErrorf("RowSums", ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if isNil(m) {
		return nil, matrixErrorf("ColSums", ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[j] += v
		}
	}

	return out, nil
}

// NonZero counts the entries that are not exactly 0.0.
// Complexity: O(r*c).
func NonZero(m Matrix) (int, error) {
	if isNil(m) {
		return 0, matrixErrorf("NonZero", ErrNilMatrix)
	}
	n := 0
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, _ = m.At(i, j); v != 0 {
				n++
			}
		}
	}

	return n, nil
}

// validateSameShape rejects nil operands and differing shapes.
func validateSameShape(a, b Matrix) error {
	if isNil(a) || isNil(b) {
		return ErrNilMatrix
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// isNil reports whether m is nil, including a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}
