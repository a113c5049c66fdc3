package lattice_test

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/unitsel/lattice"
)

func Example() {
	// Pick one pitch value per target so that each is close to its target
	// and consecutive picks stay smooth.
	targets := []float64{100, 120, 110}
	candidates := [][]float64{
		{90, 101},
		{119, 140},
		{108, 125},
	}

	lat, err := lattice.NewTable(targets, candidates)
	if err != nil {
		panic(err)
	}

	target := lattice.TargetCostFunc[float64, float64](func(t, c float64) float64 {
		return math.Abs(t - c)
	})
	join := lattice.JoinCostFunc[float64, float64](func(_, _ float64, l, r float64) float64 {
		return math.Abs(l-r) / 10
	})

	path, err := lattice.Search[float64, float64](context.Background(), lat, target, join)
	if err != nil {
		panic(err)
	}

	fmt.Println(path.Candidates())
	fmt.Printf("%.1f\n", path.TotalCost())
	// Output:
	// [101 119 108]
	// 6.9
}
