package cluster

import (
	"log/slog"
	"runtime"
)

const (
	// DefaultMaxIterations bounds the number of assignment passes.
	DefaultMaxIterations = 30

	// DefaultChunkSize is the number of samples per assignment task.
	DefaultChunkSize = 1000

	// DefaultConvergence is the relative-improvement threshold below which
	// refinement stops.
	DefaultConvergence = 0.00005

	// DefaultRepresentativeRatio is the minimum fraction of centroids the
	// representative index searches per sample.
	DefaultRepresentativeRatio = 0.10

	// DefaultRepresentativeDivisor sets the representative count to
	// len(centroids)/DefaultRepresentativeDivisor.
	DefaultRepresentativeDivisor = 100
)

type options struct {
	maxIterations int
	chunkSize     int
	workers       int
	convergence   float64
	repRatio      float64
	repDivisor    int
	autoIndexMin  int
	logger        *slog.Logger
	metrics       MetricsObserver
}

// Option configures a KMeans engine.
type Option func(*options)

func defaultOptions() options {
	return options{
		maxIterations: DefaultMaxIterations,
		chunkSize:     DefaultChunkSize,
		workers:       runtime.GOMAXPROCS(0),
		convergence:   DefaultConvergence,
		repRatio:      DefaultRepresentativeRatio,
		repDivisor:    DefaultRepresentativeDivisor,
		logger:        slog.New(slog.DiscardHandler),
		metrics:       NoopMetricsObserver{},
	}
}

// WithMaxIterations sets the maximum number of assignment passes.
// Values <= 0 keep the default of 30.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithChunkSize sets the number of samples handled by one assignment task.
// Values <= 0 keep the default of 1000.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithWorkers bounds the number of concurrently running tasks.
// Values <= 0 keep the default of runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithConvergence sets the relative-improvement threshold. Refinement stops
// when (previous - current) < previous * ratio. Negative values are ignored.
func WithConvergence(ratio float64) Option {
	return func(o *options) {
		if ratio >= 0 {
			o.convergence = ratio
		}
	}
}

// WithRepresentativeRatio sets the fraction of centroids the representative
// index collects before searching. Values outside (0, 1] are ignored.
func WithRepresentativeRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 && ratio <= 1 {
			o.repRatio = ratio
		}
	}
}

// WithRepresentativeDivisor sets how many centroids share one representative
// on average. Values <= 0 keep the default of 100.
func WithRepresentativeDivisor(d int) Option {
	return func(o *options) {
		if d > 0 {
			o.repDivisor = d
		}
	}
}

// WithAutoIndex rebuilds the representative index after every centroid
// update while at least minCentroids centroids remain. 0 disables it.
func WithAutoIndex(minCentroids int) Option {
	return func(o *options) {
		if minCentroids >= 0 {
			o.autoIndexMin = minCentroids
		}
	}
}

// WithLogger sets the logger for progress lines. Pass nil to discard.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithMetricsObserver sets the metrics observer. Pass nil to disable.
func WithMetricsObserver(m MetricsObserver) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsObserver{}
		}
		o.metrics = m
	}
}
