package lattice

import "time"

// MetricsObserver receives search statistics. It is purely observational.
type MetricsObserver interface {
	// OnSearch is called after every search. evaluations counts cost
	// calculator calls; it is 0 when the search failed validation.
	OnSearch(columns int, evaluations int64, duration time.Duration, err error)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnSearch(int, int64, time.Duration, error) {}
