// SPDX-License-Identifier: MIT
// Package: lvalign/simulate
//
// errors.go: sentinel and method tags.
//
// Generators share align's structural error so that callers branch on one
// sentinel regardless of which package rejected the input.

package simulate

import (
	"fmt"

	"github.com/katalvlaran/lvalign/align"
)

// ErrStructuralMismatch is align.ErrStructuralMismatch. Returned for block
// counts, band widths, dimensions or leaf counts that cannot produce the
// requested structure.
var ErrStructuralMismatch = align.ErrStructuralMismatch

// Method tags used in error context.
const (
	methodBlockDiagonal = "BlockDiagonal"
	methodBandDiagonal  = "BandDiagonal"
	methodRandomTree    = "RandomTree"
)

// mismatchf wraps ErrStructuralMismatch with a method tag and detail.
func mismatchf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrStructuralMismatch)
}
