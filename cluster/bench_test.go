package cluster

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkCluster(b *testing.B) {
	for _, indexed := range []bool{false, true} {
		b.Run(fmt.Sprintf("indexed=%v", indexed), func(b *testing.B) {
			benchmarkCluster(b, indexed)
		})
	}
}

func benchmarkCluster(b *testing.B, indexed bool) {
	b.ReportAllocs()

	samples, _ := blobSamples(b, 1, 100, 50, 1)

	opts := []Option{WithMaxIterations(5), WithRepresentativeDivisor(10)}
	if indexed {
		opts = append(opts, WithAutoIndex(1))
	}

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		km, err := New[point](&pointStrategy{}, 500, opts...)
		if err != nil {
			b.Fatal(err)
		}
		if err := km.Cluster(ctx, samples); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssign(b *testing.B) {
	b.ReportAllocs()

	samples, _ := blobSamples(b, 2, 50, 100, 1)

	km, err := New[point](&pointStrategy{}, 200)
	if err != nil {
		b.Fatal(err)
	}
	if err := km.Init(samples); err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := km.Assign(ctx, samples); err != nil {
			b.Fatal(err)
		}
	}
}
