package simulate_test

import (
	"fmt"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvalign/simulate"
)

// ExampleBandDiagonal prints a 4×3 band of width 2.
func ExampleBandDiagonal() {
	m, err := simulate.BandDiagonal(4, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// [0.5, 0, 0]
	// [0.5, 0.5, 0]
	// [0, 0.5, 0.5]
	// [0, 0, 0.5]
}

// ExampleRandomTree wires a zap logger through logr.
func ExampleRandomTree() {
	logger := zapr.NewLogger(zap.NewNop())

	t, err := simulate.RandomTree(5, simulate.WithSeed(1), simulate.WithLogger(logger))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t.Name(), len(t.Tips()), t.CountInternal())
	// Output:
	// y0 5 4
}
