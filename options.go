package unitsel

import (
	"log/slog"

	"github.com/hupe1980/unitsel/cluster"
	"github.com/hupe1980/unitsel/lattice"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	workers          int
	parallelRows     int
	maxIterations    int
	chunkSize        int
	convergence      float64
	repRatio         float64
	repDivisor       int
	autoIndexMin     int
}

// Option configures Search and NewClusterer.
//
// Zero values leave the engine defaults in place.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := unitsel.NewJSONLogger(slog.LevelInfo)
//	path, err := unitsel.Search(ctx, lat, tc, jc, unitsel.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &unitsel.BasicMetricsCollector{}
//	c, _ := unitsel.NewClusterer[[]float64](strategy, 64, unitsel.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Iterations: %d, Dropped: %d\n", stats.IterationCount, stats.DroppedCentroids)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithWorkers bounds the number of goroutines used by clustering.
// Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithParallelRows evaluates the rows of each lattice column on up to n
// goroutines. Cost calculators must then be safe for concurrent use.
// Search is sequential by default.
func WithParallelRows(n int) Option {
	return func(o *options) {
		o.parallelRows = n
	}
}

// WithMaxIterations caps the number of k-means assignment passes.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithChunkSize sets the number of samples per assignment task.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithConvergence sets the relative improvement below which k-means stops.
func WithConvergence(ratio float64) Option {
	return func(o *options) {
		o.convergence = ratio
	}
}

// WithRepresentativeIndex tunes the representative index: ratio is the
// minimum fraction of centroids searched per sample and divisor sets the
// representative count to len(centroids)/divisor.
func WithRepresentativeIndex(ratio float64, divisor int) Option {
	return func(o *options) {
		o.repRatio = ratio
		o.repDivisor = divisor
	}
}

// WithAutoIndex rebuilds the representative index after every centroid
// update while at least minCentroids centroids remain.
func WithAutoIndex(minCentroids int) Option {
	return func(o *options) {
		o.autoIndexMin = minCentroids
	}
}

func (o options) latticeOptions() []lattice.Option {
	out := []lattice.Option{
		lattice.WithLogger(o.logger.WithComponent("lattice").Logger),
		lattice.WithMetricsObserver(observer{mc: o.metricsCollector}),
	}
	if o.parallelRows > 1 {
		out = append(out, lattice.WithParallelRows(o.parallelRows))
	}
	return out
}

func (o options) clusterOptions() []cluster.Option {
	out := []cluster.Option{
		cluster.WithLogger(o.logger.WithComponent("cluster").Logger),
		cluster.WithMetricsObserver(observer{mc: o.metricsCollector}),
	}
	if o.workers > 0 {
		out = append(out, cluster.WithWorkers(o.workers))
	}
	if o.maxIterations > 0 {
		out = append(out, cluster.WithMaxIterations(o.maxIterations))
	}
	if o.chunkSize > 0 {
		out = append(out, cluster.WithChunkSize(o.chunkSize))
	}
	if o.convergence > 0 {
		out = append(out, cluster.WithConvergence(o.convergence))
	}
	if o.repRatio > 0 {
		out = append(out, cluster.WithRepresentativeRatio(o.repRatio))
	}
	if o.repDivisor > 0 {
		out = append(out, cluster.WithRepresentativeDivisor(o.repDivisor))
	}
	if o.autoIndexMin > 0 {
		out = append(out, cluster.WithAutoIndex(o.autoIndexMin))
	}
	return out
}
