// SPDX-License-Identifier: MIT
// Package: lvalign/frame
//
// table.go: the labeled Table and its reindexing.

package frame

import (
	"fmt"
	"strings"
)

const (
	methodNew            = "New"
	methodFromRows       = "FromRows"
	methodColumn         = "Column"
	methodReindexRows    = "ReindexRows"
	methodReindexColumns = "ReindexColumns"
	methodReplaceColumn  = "ReplaceColumn"
)

// Table is a labeled two-dimensional table: one row label per row and an
// ordered list of equally long columns.
type Table struct {
	index []string
	cols  []Column
}

// New builds a Table from row labels and columns. Inputs are copied.
//
// Errors:
//   - ErrShape if any column length differs from len(index).
func New(index []string, cols ...Column) (*Table, error) {
	for _, c := range cols {
		if c.Len() != len(index) {
			return nil, fmt.Errorf("%s: column %q has %d values, want %d: %w",
				methodNew, c.name, c.Len(), len(index), ErrShape)
		}
	}
	t := &Table{index: cloneStrings(index), cols: make([]Column, len(cols))}
	for j, c := range cols {
		t.cols[j] = c.clone()
	}

	return t, nil
}

// MustNew is New that panics on error. Intended for fixtures.
func MustNew(index []string, cols ...Column) *Table {
	t, err := New(index, cols...)
	if err != nil {
		panic(err)
	}

	return t
}

// FromRows builds an all-float Table from row-major values.
//
// Errors:
//   - ErrShape if len(rows) != len(index) or a row length differs from len(columns).
func FromRows(index, columns []string, rows [][]float64) (*Table, error) {
	if len(rows) != len(index) {
		return nil, fmt.Errorf("%s: %d rows for %d labels: %w", methodFromRows, len(rows), len(index), ErrShape)
	}
	buf := make([][]float64, len(columns))
	for j := range buf {
		buf[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%s: row %q has %d values, want %d: %w",
				methodFromRows, index[i], len(row), len(columns), ErrShape)
		}
		for j, v := range row {
			buf[j][i] = v
		}
	}
	cols := make([]Column, len(columns))
	for j, name := range columns {
		cols[j] = FloatColumn(name, buf[j]...)
	}

	return &Table{index: cloneStrings(index), cols: cols}, nil
}

// MustFromRows is FromRows that panics on error. Intended for fixtures.
func MustFromRows(index, columns []string, rows [][]float64) *Table {
	t, err := FromRows(index, columns, rows)
	if err != nil {
		panic(err)
	}

	return t
}

// Index returns a copy of the row labels.
func (t *Table) Index() []string { return cloneStrings(t.index) }

// Columns returns a copy of the column labels.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	for j, c := range t.cols {
		out[j] = c.name
	}

	return out
}

// Shape returns (rows, cols).
func (t *Table) Shape() (rows, cols int) { return len(t.index), len(t.cols) }

// ColumnAt returns the j-th column. Panics on out-of-range j.
func (t *Table) ColumnAt(j int) Column { return t.cols[j].clone() }

// Column returns the first column labeled name.
func (t *Table) Column(name string) (Column, error) {
	for _, c := range t.cols {
		if c.name == name {
			return c.clone(), nil
		}
	}

	return Column{}, fmt.Errorf("%s(%q): %w", methodColumn, name, ErrUnknownLabel)
}

// At returns the value at (row label, column label).
func (t *Table) At(row, col string) (any, error) {
	i, ok := firstPositions(t.index)[row]
	if !ok {
		return nil, fmt.Errorf("At(%q,%q): row: %w", row, col, ErrUnknownLabel)
	}
	c, err := t.Column(col)
	if err != nil {
		return nil, err
	}

	return c.values[i], nil
}

// DuplicateIndex lists row labels occurring more than once, each reported
// once, in the order their second occurrence appears. Empty when all labels
// are unique.
func (t *Table) DuplicateIndex() []string { return duplicates(t.index) }

// DuplicateColumns lists column labels occurring more than once.
func (t *Table) DuplicateColumns() []string { return duplicates(t.Columns()) }

// ReindexRows returns a new Table whose rows are the rows labeled labels, in
// that order. A duplicated source label resolves to its first occurrence.
//
// Errors:
//   - ErrUnknownLabel if a label is not a row label.
func (t *Table) ReindexRows(labels []string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	pos := firstPositions(t.index)
	idx := make([]int, len(labels))
	for k, l := range labels {
		p, ok := pos[l]
		if !ok {
			return nil, fmt.Errorf("%s(%q): %w", methodReindexRows, l, ErrUnknownLabel)
		}
		idx[k] = p
	}
	out := &Table{index: cloneStrings(labels), cols: make([]Column, len(t.cols))}
	for j, c := range t.cols {
		out.cols[j] = c.take(idx)
	}

	return out, nil
}

// ReindexColumns returns a new Table holding the columns labeled labels, in
// that order. Row labels are preserved.
//
// Errors:
//   - ErrUnknownLabel if a label is not a column label.
func (t *Table) ReindexColumns(labels []string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	pos := firstPositions(t.Columns())
	out := &Table{index: cloneStrings(t.index), cols: make([]Column, len(labels))}
	for k, l := range labels {
		p, ok := pos[l]
		if !ok {
			return nil, fmt.Errorf("%s(%q): %w", methodReindexColumns, l, ErrUnknownLabel)
		}
		out.cols[k] = t.cols[p].clone()
	}

	return out, nil
}

// ReplaceColumn returns a copy of t with the j-th column replaced by c.
//
// Errors:
//   - ErrShape if c.Len() differs from the row count.
//   - ErrUnknownLabel if j is out of range.
func (t *Table) ReplaceColumn(j int, c Column) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if j < 0 || j >= len(t.cols) {
		return nil, fmt.Errorf("%s(%d): %w", methodReplaceColumn, j, ErrUnknownLabel)
	}
	if c.Len() != len(t.index) {
		return nil, fmt.Errorf("%s(%d): column has %d values, want %d: %w",
			methodReplaceColumn, j, c.Len(), len(t.index), ErrShape)
	}
	out := t.Clone()
	out.cols[j] = c.clone()

	return out, nil
}

// Clone returns a deep copy of t (object values are shared).
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{index: cloneStrings(t.index), cols: make([]Column, len(t.cols))}
	for j, c := range t.cols {
		out.cols[j] = c.clone()
	}

	return out
}

// Equal reports whether t and o have the same labels, kinds and values.
// NaN compares equal to NaN. Used by go-cmp through the Equal method.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.index) != len(o.index) || len(t.cols) != len(o.cols) {
		return false
	}
	for i := range t.index {
		if t.index[i] != o.index[i] {
			return false
		}
	}
	for j := range t.cols {
		if !t.cols[j].equal(o.cols[j]) {
			return false
		}
	}

	return true
}

// String renders t as a tab-separated grid with a header row.
func (t *Table) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	for _, c := range t.cols {
		b.WriteByte('\t')
		b.WriteString(c.name)
	}
	b.WriteByte('\n')
	for i, label := range t.index {
		b.WriteString(label)
		for _, c := range t.cols {
			fmt.Fprintf(&b, "\t%v", c.values[i])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}

// firstPositions maps each label to the position of its first occurrence.
func firstPositions(labels []string) map[string]int {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := pos[l]; !ok {
			pos[l] = i
		}
	}

	return pos
}

func duplicates(labels []string) []string {
	seen := make(map[string]int, len(labels))
	var out []string
	for _, l := range labels {
		seen[l]++
		if seen[l] == 2 {
			out = append(out, l)
		}
	}

	return out
}
