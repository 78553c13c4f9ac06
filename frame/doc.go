// SPDX-License-Identifier: MIT

// Package frame provides the labeled two-dimensional table that alignment
// code reads from and returns: row labels (samples), column labels
// (features or covariates) and typed columns.
//
// What
//
//   - Column: a named vector with a Kind (float, int, bool, string, object).
//   - Table: row labels plus an ordered list of columns of equal length.
//   - ReindexRows / ReindexColumns: label-driven selection and reordering
//     that always returns a new Table.
//   - ReplaceColumn: per-column replacement on a copy.
//   - ToDense / FromDense: bridge to matrix.Dense for numeric consumers.
//
// Labels are not required to be unique at construction time: detecting
// duplicates is the caller's job (see DuplicateIndex / DuplicateColumns),
// because that is exactly the condition matchers must report. Lookups by a
// duplicated label resolve to its first occurrence.
//
// Every method is non-mutating. A Table returned by any method shares no
// slices with its receiver.
//
// Errors
//
//   - ErrNilTable      nil receiver or argument.
//   - ErrShape         column lengths disagree with the row labels.
//   - ErrUnknownLabel  a requested row or column label does not exist.
//   - ErrNotNumeric    ToDense on a table with a non-float column.
package frame
