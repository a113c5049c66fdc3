package lattice

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/unitsel/testutil"
)

func BenchmarkSearch(b *testing.B) {
	for _, rows := range []int{16, 64, 256} {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("rows=%d/workers=%d", rows, workers), func(b *testing.B) {
				benchmarkSearch(b, 32, rows, workers)
			})
		}
	}
}

func benchmarkSearch(b *testing.B, columns, rows, workers int) {
	b.ReportAllocs()

	shape := make([]int, columns)
	for i := range shape {
		shape[i] = rows
	}
	table := testutil.NewRNG(1).CostTable(shape, 1)
	tc, jc := tableCosters(table)

	s, err := NewSearcher[int, int](tc, jc, WithParallelRows(workers))
	if err != nil {
		b.Fatal(err)
	}
	lat := tableLattice{table}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Search(ctx, lat); err != nil {
			b.Fatal(err)
		}
	}
}
