package unitsel

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/unitsel/cluster"
	"github.com/hupe1980/unitsel/lattice"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(columns int, evaluations int64, duration time.Duration, err error) {
//	    p.searchHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordSearch is called after each lattice search.
	// evaluations is the number of cost calculator calls, err is nil if
	// successful.
	RecordSearch(columns int, evaluations int64, duration time.Duration, err error)

	// RecordIteration is called after each k-means assignment pass.
	// dropped is the number of centroids removed as empty in this pass.
	RecordIteration(centroids, dropped int, totalDistance float64, duration time.Duration)

	// RecordIndexBuild is called after each representative index build.
	RecordIndexBuild(representatives, centroids int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, int64, time.Duration, error)    {}
func (NoopMetricsCollector) RecordIteration(int, int, float64, time.Duration) {}
func (NoopMetricsCollector) RecordIndexBuild(int, int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchTotalNanos  atomic.Int64
	SearchEvaluations atomic.Int64
	IterationCount    atomic.Int64
	DroppedCentroids  atomic.Int64
	IndexBuildCount   atomic.Int64
	IndexBuildErrors  atomic.Int64
	IndexTotalNanos   atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ int, evaluations int64, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.SearchEvaluations.Add(evaluations)
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_, dropped int, _ float64, _ time.Duration) {
	b.IterationCount.Add(1)
	b.DroppedCentroids.Add(int64(dropped))
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(_, _ int, duration time.Duration, err error) {
	b.IndexBuildCount.Add(1)
	b.IndexTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IndexBuildErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		SearchEvaluations: b.SearchEvaluations.Load(),
		IterationCount:    b.IterationCount.Load(),
		DroppedCentroids:  b.DroppedCentroids.Load(),
		IndexBuildCount:   b.IndexBuildCount.Load(),
		IndexBuildErrors:  b.IndexBuildErrors.Load(),
		IndexAvgNanos:     avg(b.IndexTotalNanos.Load(), b.IndexBuildCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	SearchEvaluations int64
	IterationCount    int64
	DroppedCentroids  int64
	IndexBuildCount   int64
	IndexBuildErrors  int64
	IndexAvgNanos     int64
}

// observer forwards engine callbacks to a MetricsCollector.
type observer struct {
	mc MetricsCollector
}

var (
	_ lattice.MetricsObserver = observer{}
	_ cluster.MetricsObserver = observer{}
)

func (o observer) OnSearch(columns int, evaluations int64, duration time.Duration, err error) {
	o.mc.RecordSearch(columns, evaluations, duration, err)
}

func (o observer) OnIteration(_ int, totalDistance float64, centroids, dropped int, duration time.Duration) {
	o.mc.RecordIteration(centroids, dropped, totalDistance, duration)
}

func (o observer) OnIndexBuild(representatives, centroids int, duration time.Duration, err error) {
	o.mc.RecordIndexBuild(representatives, centroids, duration, err)
}
