// SPDX-License-Identifier: MIT
// Package: lvalign/frame
//
// dense.go: conversion to and from matrix.Dense.

package frame

import (
	"fmt"

	"github.com/katalvlaran/lvalign/matrix"
)

// ToDense copies the values of an all-float table into a row-major matrix.
//
// Errors:
//   - ErrNotNumeric if any column is not KindFloat.
//   - matrix.ErrInvalidDimensions if the table has no rows or no columns.
func (t *Table) ToDense() (*matrix.Dense, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	r, c := t.Shape()
	data := make([]float64, r*c)
	for j, col := range t.cols {
		vals, ok := col.Floats()
		if !ok {
			return nil, fmt.Errorf("ToDense: column %q is %s: %w", col.name, col.kind, ErrNotNumeric)
		}
		for i, v := range vals {
			data[i*c+j] = v
		}
	}

	return matrix.NewDenseFrom(r, c, data)
}

// FromDense labels a matrix, producing an all-float Table.
//
// Errors:
//   - ErrShape if the labels do not match the matrix shape.
func FromDense(m *matrix.Dense, index, columns []string) (*Table, error) {
	if m == nil {
		return nil, fmt.Errorf("FromDense: %w", matrix.ErrNilMatrix)
	}
	if m.Rows() != len(index) || m.Cols() != len(columns) {
		return nil, fmt.Errorf("FromDense: %dx%d matrix for %d row and %d column labels: %w",
			m.Rows(), m.Cols(), len(index), len(columns), ErrShape)
	}
	cols := make([]Column, len(columns))
	for j, name := range columns {
		vals, err := m.Col(j)
		if err != nil {
			return nil, err
		}
		cols[j] = FloatColumn(name, vals...)
	}

	return &Table{index: cloneStrings(index), cols: cols}, nil
}
