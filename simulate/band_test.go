package simulate_test

import (
	"testing"

	"github.com/katalvlaran/lvalign/matrix"
	"github.com/katalvlaran/lvalign/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandDiagonal8x3(t *testing.T) {
	const w = 1.0 / 3
	want, err := matrix.NewDenseFrom(8, 6, []float64{
		w, 0, 0, 0, 0, 0,
		w, w, 0, 0, 0, 0,
		w, w, w, 0, 0, 0,
		0, w, w, w, 0, 0,
		0, 0, w, w, w, 0,
		0, 0, 0, w, w, w,
		0, 0, 0, 0, w, w,
		0, 0, 0, 0, 0, w,
	})
	require.NoError(t, err)

	got, err := simulate.BandDiagonal(8, 3)
	require.NoError(t, err)
	ok, err := matrix.AllClose(want, got, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok, "got\n%s", got)

	sums, err := matrix.ColSums(got)
	require.NoError(t, err)
	for j, s := range sums {
		assert.InDelta(t, 1.0, s, 1e-12, "column %d", j)
	}
	nz, err := matrix.NonZero(got)
	require.NoError(t, err)
	assert.Equal(t, 18, nz)
}

func TestBandDiagonalEdges(t *testing.T) {
	full, err := simulate.BandDiagonal(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, full.Cols())
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, full.RawCopy())

	ident, err := simulate.BandDiagonal(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, ident.RawCopy())

	for _, tc := range []struct{ n, w int }{{8, 0}, {8, 9}, {0, 1}, {3, -1}} {
		_, err := simulate.BandDiagonal(tc.n, tc.w)
		assert.ErrorIs(t, err, simulate.ErrStructuralMismatch, "n=%d w=%d", tc.n, tc.w)
	}
}
