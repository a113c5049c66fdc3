// Package unitsel provides the search and clustering core of a unit
// selection voice-building pipeline.
//
// Two engines do the work:
//
//   - lattice: a Viterbi search that picks one candidate per target position
//     so that the summed target and join costs are minimal.
//   - cluster: a parallel k-means that compresses large candidate populations
//     into representative groups, with an optional two-level representative
//     index for large K.
//
// This package wires both engines to a shared logger, metrics collector and
// set of options, and normalizes caller data errors.
//
// # Quick Start
//
// Lattice search over feature-vector units:
//
//	lat, _ := lattice.NewTable(targets, candidates)
//	tc, _ := cost.NewFeatureTargetCost(distance.MetricSquaredL2, 1)
//	jc, _ := cost.NewFeatureJoinCost(distance.MetricL2, 0.5)
//	path, err := unitsel.Search[cost.Target, cost.Unit](ctx, lat, tc, cost.CachedJoin(jc, 1<<16))
//
// Clustering vectors:
//
//	strategy, _ := distance.NewVectorStrategy(distance.MetricSquaredL2)
//	c, _ := unitsel.NewClusterer[[]float64](strategy, 256,
//	    unitsel.WithWorkers(8),
//	    unitsel.WithAutoIndex(1000),
//	)
//	err := c.Cluster(ctx, cluster.NewSamples(vectors))
//
// # Observability
//
// Logging uses log/slog through Logger; metrics go to a MetricsCollector.
// Both are optional and purely observational.
package unitsel
