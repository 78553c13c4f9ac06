package frame_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvalign/frame"
	"github.com/katalvlaran/lvalign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *frame.Table {
	return frame.MustNew([]string{"s1", "s2", "s3"},
		frame.FloatColumn("a", 1, 2, 3),
		frame.StringColumn("b", "x", "y", "z"),
		frame.ObjectColumn("c", "1", 2, nil),
	)
}

func TestNewShapeMismatch(t *testing.T) {
	_, err := frame.New([]string{"s1", "s2"}, frame.FloatColumn("a", 1))
	assert.ErrorIs(t, err, frame.ErrShape)

	_, err = frame.FromRows([]string{"s1"}, []string{"a", "b"}, [][]float64{{1}})
	assert.ErrorIs(t, err, frame.ErrShape)

	_, err = frame.FromRows([]string{"s1", "s2"}, []string{"a"}, [][]float64{{1}})
	assert.ErrorIs(t, err, frame.ErrShape)
}

func TestAccessors(t *testing.T) {
	tb := sample()
	r, c := tb.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []string{"s1", "s2", "s3"}, tb.Index())
	assert.Equal(t, []string{"a", "b", "c"}, tb.Columns())

	col, err := tb.Column("b")
	require.NoError(t, err)
	assert.Equal(t, frame.KindString, col.Kind())
	assert.Equal(t, []any{"x", "y", "z"}, col.Values())

	_, err = tb.Column("zz")
	assert.ErrorIs(t, err, frame.ErrUnknownLabel)

	v, err := tb.At("s2", "c")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = tb.At("nope", "a")
	assert.ErrorIs(t, err, frame.ErrUnknownLabel)

	f, ok := tb.ColumnAt(0).Floats()
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, f)
	_, ok = tb.ColumnAt(1).Floats()
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	tb := sample()
	idx := tb.Index()
	idx[0] = "mutated"
	vals := tb.ColumnAt(0).Values()
	vals[0] = 99.0
	assert.Equal(t, "s1", tb.Index()[0])
	assert.Equal(t, 1.0, tb.ColumnAt(0).Value(0))
}

func TestReindex(t *testing.T) {
	tb := sample()

	rows, err := tb.ReindexRows([]string{"s3", "s1"})
	require.NoError(t, err)
	want := frame.MustNew([]string{"s3", "s1"},
		frame.FloatColumn("a", 3, 1),
		frame.StringColumn("b", "z", "x"),
		frame.ObjectColumn("c", nil, "1"),
	)
	assert.Empty(t, cmp.Diff(want, rows))

	cols, err := tb.ReindexColumns([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, cols.Columns())
	assert.Equal(t, tb.Index(), cols.Index())

	_, err = tb.ReindexRows([]string{"s9"})
	assert.ErrorIs(t, err, frame.ErrUnknownLabel)
	_, err = tb.ReindexColumns([]string{"q"})
	assert.ErrorIs(t, err, frame.ErrUnknownLabel)

	// receiver untouched
	assert.Empty(t, cmp.Diff(sample(), tb))
}

func TestDuplicates(t *testing.T) {
	tb := frame.MustNew([]string{"s1", "s2", "s1", "s3", "s2", "s1"},
		frame.IntColumn("a", 1, 2, 3, 4, 5, 6),
		frame.IntColumn("a", 1, 2, 3, 4, 5, 6),
	)
	assert.Equal(t, []string{"s1", "s2"}, tb.DuplicateIndex())
	assert.Equal(t, []string{"a"}, tb.DuplicateColumns())
	assert.Empty(t, sample().DuplicateIndex())
	assert.Empty(t, sample().DuplicateColumns())
}

func TestReplaceColumn(t *testing.T) {
	tb := sample()
	out, err := tb.ReplaceColumn(2, frame.FloatColumn("c", 1, 2, math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, frame.KindFloat, out.ColumnAt(2).Kind())
	assert.Equal(t, frame.KindObject, tb.ColumnAt(2).Kind())

	_, err = tb.ReplaceColumn(5, frame.FloatColumn("c", 1, 2, 3))
	assert.ErrorIs(t, err, frame.ErrUnknownLabel)
	_, err = tb.ReplaceColumn(0, frame.FloatColumn("a", 1))
	assert.ErrorIs(t, err, frame.ErrShape)
}

func TestEqualTreatsNaNAsEqual(t *testing.T) {
	a := frame.MustNew([]string{"x"}, frame.FloatColumn("v", math.NaN()))
	b := frame.MustNew([]string{"x"}, frame.FloatColumn("v", math.NaN()))
	assert.True(t, a.Equal(b))
	assert.True(t, cmp.Equal(a, b))

	c := frame.MustNew([]string{"x"}, frame.ObjectColumn("v", math.NaN()))
	assert.False(t, a.Equal(c), "kind differs")
	assert.False(t, a.Equal(nil))
}

func TestDenseBridge(t *testing.T) {
	tb := frame.MustFromRows([]string{"r1", "r2"}, []string{"c1", "c2", "c3"},
		[][]float64{{1, 2, 3}, {4, 5, 6}})

	m, err := tb.ToDense()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.RawCopy())

	back, err := frame.FromDense(m, tb.Index(), tb.Columns())
	require.NoError(t, err)
	assert.True(t, tb.Equal(back))

	_, err = sample().ToDense()
	assert.ErrorIs(t, err, frame.ErrNotNumeric)

	_, err = frame.FromDense(m, []string{"r1"}, tb.Columns())
	assert.ErrorIs(t, err, frame.ErrShape)

	_, err = frame.FromDense(nil, nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestString(t *testing.T) {
	tb := frame.MustFromRows([]string{"r1"}, []string{"c1", "c2"}, [][]float64{{1, 2.5}})
	assert.Equal(t, "\tc1\tc2\nr1\t1\t2.5\n", tb.String())
	assert.Equal(t, "float", frame.KindFloat.String())
	assert.Equal(t, "object", frame.KindObject.String())
}
