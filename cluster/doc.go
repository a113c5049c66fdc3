// Package cluster implements scalable k-means clustering over caller-defined
// samples.
//
// The engine never interprets sample payloads. Distances and centroids come
// from a Strategy supplied by the caller, so the same engine clusters feature
// vectors, spectral envelopes, or any other representation that has a
// distance and a notion of center.
//
// # Algorithm
//
//  1. INITIALIZATION: K centroids taken by uniform stride through the
//     samples (samples[k*floor(n/K)]). Deterministic for a fixed order.
//  2. ASSIGNMENT: every sample is attached to its nearest centroid. Samples
//     are split into fixed-size chunks processed in parallel; each chunk
//     returns a partial distance sum that is reduced after the join.
//  3. PRUNING: centroids that attracted no sample are dropped. The centroid
//     count never grows again.
//  4. UPDATE: every surviving centroid is replaced by Strategy.Center of its
//     members.
//  5. REPEAT until the total distance is 0, the relative improvement falls
//     below the convergence ratio, or the iteration cap is reached.
//
// # Representative Index
//
// For large K, BuildRepresentativeIndex clusters the centroids themselves
// into K/100 representatives. Assignment then visits representatives in
// ascending distance order and only searches the centroids of the closest
// representatives until 10% of all centroids are collected. The search is
// approximate: a sample may land on a centroid that is not its exact nearest
// neighbour. The index is a snapshot and is discarded whenever centroids
// change; rebuild it explicitly or enable WithAutoIndex.
//
// # Concurrency
//
// Strategy.Distance and Strategy.Center are called from multiple goroutines
// and must be safe for concurrent use. A KMeans value itself is not safe for
// concurrent use.
//
// # Usage
//
//	samples := cluster.NewSamples(vectors)
//	km, _ := cluster.New[[]float64](strategy, 256, cluster.WithMaxIterations(50))
//	if err := km.Cluster(ctx, samples); err != nil {
//	    return err
//	}
//	for centroid, members := range cluster.Group(samples) {
//	    fmt.Println(centroid.Value, len(members))
//	}
package cluster
