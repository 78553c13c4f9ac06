// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// errors.go: sentinel error and method tags for the align package.
//
// Error policy:
//   • One sentinel, ErrStructuralMismatch, covers every structural failure,
//     from duplicate labels to wrong-length name lists.
//   • Detection sites attach context with %w; callers use errors.Is.
//   • Numeric coercion never fails and therefore never returns an error.

package align

import (
	"errors"
	"fmt"
)

// ErrStructuralMismatch indicates that the inputs cannot be reconciled:
// duplicate row, column or tip labels, no shared labels, or a names list
// whose length differs from the number of internal nodes.
var ErrStructuralMismatch = errors.New("align: structural mismatch")

// Method tags used in error context.
const (
	methodMatch      = "Match"
	methodMatchTips  = "MatchTips"
	methodMatchAll   = "MatchAll"
	methodRenameNode = "RenameInternalNodes"
)

// mismatchf wraps ErrStructuralMismatch with a method tag and detail.
func mismatchf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrStructuralMismatch)
}
