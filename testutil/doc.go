// Package testutil provides testing utilities for unitsel.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random feature vectors, well-separated
// clusters, random lattice cost tables with brute-force ground truth, and
// agreement measures for approximate searches.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 13)
//	blobs, labels := rng.GaussianBlobs(testutil.GridCenters(9, 2, 10), 50, 0.3)
//
// # Lattice Ground Truth
//
//	table := rng.CostTable([]int{3, 2, 3}, 10)
//	rows, cost := table.BruteForce()
//
// # Agreement
//
//	ratio := testutil.Agreement(exact, approx)
package testutil
