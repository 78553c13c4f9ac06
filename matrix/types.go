// SPDX-License-Identifier: MIT
// Package: lvalign/matrix
//
// types.go: the Matrix interface.

package matrix

// Matrix is the view that AllClose, RowSums, ColSums and NonZero accept.
// *Dense is the implementation this module ships; the helpers take a flat
// fast path for it and use At for anything else.
type Matrix interface {
	Rows() int
	Cols() int

	// At and Set fail with ErrIndexOutOfBounds outside [0,Rows)x[0,Cols).
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error

	// Clone shares no storage with the receiver.
	Clone() Matrix
}
