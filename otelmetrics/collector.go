// Package otelmetrics records unitsel search and clustering metrics through
// the OpenTelemetry Metrics API.
//
// Pass a [Collector] to unitsel.WithMetricsCollector. Use [New] with a custom
// [metric.MeterProvider] in tests; [New] with otel.GetMeterProvider() picks
// up whatever exporter (Prometheus, OTLP, ...) the application configured.
package otelmetrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hupe1980/unitsel"
)

// meterName is the instrumentation scope name used for all unitsel metrics.
const meterName = "github.com/hupe1980/unitsel"

// Metric names.
const (
	SearchDuration     = "unitsel.search.duration"
	SearchEvaluations  = "unitsel.search.evaluations"
	IterationDuration  = "unitsel.kmeans.iteration.duration"
	Iterations         = "unitsel.kmeans.iterations"
	DroppedCentroids   = "unitsel.kmeans.dropped_centroids"
	Centroids          = "unitsel.kmeans.centroids"
	IndexBuildDuration = "unitsel.kmeans.index_build.duration"
)

var latencyBuckets = []float64{
	0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30,
}

// Collector implements unitsel.MetricsCollector with OpenTelemetry
// instruments. It is safe for concurrent use.
type Collector struct {
	searchDuration    metric.Float64Histogram
	searchEvaluations metric.Int64Counter
	iterationDuration metric.Float64Histogram
	iterations        metric.Int64Counter
	dropped           metric.Int64Counter
	centroids         metric.Int64Gauge
	indexDuration     metric.Float64Histogram
}

var _ unitsel.MetricsCollector = (*Collector)(nil)

// New creates a Collector using the given MeterProvider.
func New(mp metric.MeterProvider) (*Collector, error) {
	m := mp.Meter(meterName)
	var err error
	c := &Collector{}

	if c.searchDuration, err = m.Float64Histogram(SearchDuration,
		metric.WithDescription("Latency of lattice searches."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if c.searchEvaluations, err = m.Int64Counter(SearchEvaluations,
		metric.WithDescription("Cost calculator calls made by lattice searches."),
	); err != nil {
		return nil, err
	}
	if c.iterationDuration, err = m.Float64Histogram(IterationDuration,
		metric.WithDescription("Latency of k-means assignment passes."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if c.iterations, err = m.Int64Counter(Iterations,
		metric.WithDescription("Total k-means assignment passes."),
	); err != nil {
		return nil, err
	}
	if c.dropped, err = m.Int64Counter(DroppedCentroids,
		metric.WithDescription("Total centroids dropped as empty."),
	); err != nil {
		return nil, err
	}
	if c.centroids, err = m.Int64Gauge(Centroids,
		metric.WithDescription("Centroid count after the last assignment pass."),
	); err != nil {
		return nil, err
	}
	if c.indexDuration, err = m.Float64Histogram(IndexBuildDuration,
		metric.WithDescription("Latency of representative index builds."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func statusAttr(err error) metric.MeasurementOption {
	status := "ok"
	if err != nil {
		status = "error"
	}
	return metric.WithAttributes(attribute.String("status", status))
}

// RecordSearch implements unitsel.MetricsCollector.
func (c *Collector) RecordSearch(columns int, evaluations int64, duration time.Duration, err error) {
	ctx := context.Background()
	c.searchDuration.Record(ctx, duration.Seconds(), statusAttr(err))
	c.searchEvaluations.Add(ctx, evaluations)
}

// RecordIteration implements unitsel.MetricsCollector.
func (c *Collector) RecordIteration(centroids, dropped int, _ float64, duration time.Duration) {
	ctx := context.Background()
	c.iterationDuration.Record(ctx, duration.Seconds())
	c.iterations.Add(ctx, 1)
	c.dropped.Add(ctx, int64(dropped))
	c.centroids.Record(ctx, int64(centroids))
}

// RecordIndexBuild implements unitsel.MetricsCollector.
func (c *Collector) RecordIndexBuild(representatives, centroids int, duration time.Duration, err error) {
	c.indexDuration.Record(context.Background(), duration.Seconds(),
		statusAttr(err),
		metric.WithAttributes(attribute.Int("representatives", representatives)),
	)
}
