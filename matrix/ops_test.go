package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4.000001})
	require.NoError(t, err)

	ok, err := matrix.AllClose(a, b, 1e-5, 1e-5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	c, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.AllClose(a, c, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllCloseInfinities(t *testing.T) {
	a, _ := matrix.NewDenseFrom(1, 2, []float64{math.Inf(1), math.Inf(-1)})
	b, _ := matrix.NewDenseFrom(1, 2, []float64{math.Inf(1), math.Inf(-1)})
	ok, err := matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	c, _ := matrix.NewDenseFrom(1, 2, []float64{math.Inf(1), 0})
	ok, err = matrix.AllClose(a, c, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRowColSums(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	rs, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, rs)

	cs, err := matrix.ColSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, cs)

	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.ColSums(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNonZero(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{0, 1e-300, -2, 0})
	require.NoError(t, err)

	n, err := matrix.NonZero(m)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
