// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// coerce.go: numeric coercion of table columns.

package align

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalign/frame"
)

// CastToFloat returns a copy of t in which every column whose values all
// convert to float64 is replaced by a float column. Columns holding at least
// one non-convertible value are kept as they are. The input is not modified
// and the call never fails; a nil table yields nil.
//
// Convertible values:
//   - every Go integer and float type;
//   - bool (true 1, false 0);
//   - strings that strconv.ParseFloat accepts after trimming spaces;
//   - nil, which becomes NaN.
//
// Complexity: O(rows*cols).
func CastToFloat(t *frame.Table, opts ...Option) *frame.Table {
	if t == nil {
		return nil
	}
	cfg := newConfig(opts...)

	nRows, nCols := t.Shape()
	cols := make([]frame.Column, nCols)
	converted := 0
	for j := range cols {
		col := t.ColumnAt(j)
		cols[j] = col
		if col.Kind() == frame.KindFloat {
			continue
		}
		vals, ok := columnFloats(col)
		if !ok {
			cfg.logger.V(2).Info("column kept", "column", col.Name(), "kind", col.Kind().String())
			continue
		}
		cols[j] = frame.FloatColumn(col.Name(), vals...)
		converted++
		cfg.logger.V(2).Info("column converted", "column", col.Name(), "from", col.Kind().String())
	}
	// every column keeps its length, so New cannot fail
	out := frame.MustNew(t.Index(), cols...)
	cfg.logger.V(1).Info("numeric coercion done", "rows", nRows, "columns", nCols, "converted", converted)

	return out
}

// columnFloats converts every value of c, reporting false on the first failure.
func columnFloats(c frame.Column) ([]float64, bool) {
	out := make([]float64, c.Len())
	for i := range out {
		f, ok := toFloat(c.Value(i))
		if !ok {
			return nil, false
		}
		out[i] = f
	}

	return out, true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	return 0, false
}
