package align_test

import (
	"math"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastToFloat(t *testing.T) {
	idx := []string{"0", "1", "2", "3", "4"}
	in := frame.MustNew(idx,
		frame.IntColumn("a", 1, 2, 3, 4, 5),
		frame.StringColumn("b", "1", "2", "3", "4", "5"),
		frame.StringColumn("c", "a", "b", "c", "d", "e"),
		frame.FloatColumn("d", 1, 2, 3, 4, 5),
	)
	before := in.Clone()

	got := align.CastToFloat(in, align.WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 2})))

	want := frame.MustNew(idx,
		frame.FloatColumn("a", 1, 2, 3, 4, 5),
		frame.FloatColumn("b", 1, 2, 3, 4, 5),
		frame.StringColumn("c", "a", "b", "c", "d", "e"),
		frame.FloatColumn("d", 1, 2, 3, 4, 5),
	)
	assert.Empty(t, cmp.Diff(want, got))
	assert.Empty(t, cmp.Diff(before, in), "input mutated")
}

func TestCastToFloatObjectValues(t *testing.T) {
	idx := []string{"r1", "r2", "r3", "r4"}
	in := frame.MustNew(idx,
		frame.ObjectColumn("mixed", int32(7), " 2.5 ", true, nil),
		frame.ObjectColumn("bad", 1.0, "x", 3, 4),
		frame.BoolColumn("flag", true, false, true, false),
		frame.ObjectColumn("unsigned", uint8(1), uint64(2), float32(0.5), "-1e2"),
	)

	got := align.CastToFloat(in)

	mixed, err := got.Column("mixed")
	require.NoError(t, err)
	vals, ok := mixed.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{7, 2.5, 1}, vals[:3])
	assert.True(t, math.IsNaN(vals[3]))

	bad, err := got.Column("bad")
	require.NoError(t, err)
	assert.Equal(t, frame.KindObject, bad.Kind())
	assert.Equal(t, []any{1.0, "x", 3, 4}, bad.Values())

	flag, err := got.Column("flag")
	require.NoError(t, err)
	f, ok := flag.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 0, 1, 0}, f)

	unsigned, err := got.Column("unsigned")
	require.NoError(t, err)
	u, ok := unsigned.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 0.5, -100}, u)
}

func TestCastToFloatEdge(t *testing.T) {
	assert.Nil(t, align.CastToFloat(nil))

	empty := frame.MustNew(nil)
	got := align.CastToFloat(empty)
	r, c := got.Shape()
	assert.Zero(t, r)
	assert.Zero(t, c)

	// an empty string is not a number
	in := frame.MustNew([]string{"x"}, frame.StringColumn("s", ""))
	col, err := align.CastToFloat(in).Column("s")
	require.NoError(t, err)
	assert.Equal(t, frame.KindString, col.Kind())
}

// TestCastToFloatWideTable converts a table with many columns in one pass and
// checks every cell, plus the columns that must stay untouched.
func TestCastToFloatWideTable(t *testing.T) {
	const rows, cols = 1000, 400
	in := intTable(rows, cols)

	got := align.CastToFloat(in)

	r, c := got.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
	assert.Equal(t, in.Index(), got.Index())
	assert.Equal(t, in.Columns(), got.Columns())
	for j := 0; j < cols; j++ {
		col := got.ColumnAt(j)
		require.Equal(t, frame.KindFloat, col.Kind(), "column %d", j)
		vals, ok := col.Floats()
		require.True(t, ok)
		for i, v := range vals {
			if v != float64(i*cols+j) {
				t.Fatalf("cell (%d,%d) = %v, want %d", i, j, v, i*cols+j)
			}
		}
	}
	// the input keeps its int columns
	assert.Equal(t, frame.KindInt, in.ColumnAt(0).Kind())
	assert.Equal(t, frame.KindInt, in.ColumnAt(cols-1).Kind())
}
