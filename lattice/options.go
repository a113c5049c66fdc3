package lattice

import "log/slog"

type options struct {
	workers int
	logger  *slog.Logger
	metrics MetricsObserver
}

// Option configures a Searcher.
type Option func(*options)

func defaultOptions() options {
	return options{
		workers: 1,
		logger:  slog.New(slog.DiscardHandler),
		metrics: NoopMetricsObserver{},
	}
}

// WithParallelRows evaluates the rows of a column on up to workers
// goroutines. Columns are still processed strictly in order and the result
// is identical to the sequential search, but cost calculators are then
// called concurrently and in no particular order within a column, so they
// must be safe for concurrent use. Values <= 1 select sequential search.
func WithParallelRows(workers int) Option {
	return func(o *options) {
		o.workers = max(1, workers)
	}
}

// WithLogger sets the logger. Pass nil to discard.
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
