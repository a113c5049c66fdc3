// Package distance provides float64 vector distance calculations backed by
// gonum's floats routines, and a k-means strategy over feature vectors.
//
// # Supported Metrics
//
//   - MetricSquaredL2: Squared Euclidean distance (default)
//   - MetricL2: Euclidean distance
//   - MetricCosine: Cosine distance (1 - cosine similarity)
//   - MetricManhattan: L1 distance
//
// # Usage
//
//	fn, _ := distance.Provider(distance.MetricSquaredL2)
//	d := fn(a, b)
//
//	km, _ := cluster.New[[]float64](distance.VectorStrategy{Metric: distance.MetricSquaredL2}, 64)
package distance
