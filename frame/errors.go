// SPDX-License-Identifier: MIT
// Package: lvalign/frame
//
// errors.go: sentinel errors.

package frame

import "errors"

// Sentinel errors for table operations.
var (
	// ErrNilTable indicates a nil *Table receiver or argument.
	ErrNilTable = errors.New("frame: table is nil")

	// ErrShape indicates that column lengths disagree with the number of row labels,
	// or that a matrix shape disagrees with the supplied labels.
	ErrShape = errors.New("frame: shape mismatch")

	// ErrUnknownLabel indicates that a row or column label is not present.
	ErrUnknownLabel = errors.New("frame: unknown label")

	// ErrNotNumeric indicates that a numeric view was requested over a non-float column.
	ErrNotNumeric = errors.New("frame: column is not numeric")
)
