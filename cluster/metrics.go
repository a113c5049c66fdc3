package cluster

import "time"

// MetricsObserver receives clustering progress. It is purely observational.
type MetricsObserver interface {
	// OnIteration is called after each assignment pass.
	OnIteration(iteration int, totalDistance float64, centroids, dropped int, duration time.Duration)

	// OnIndexBuild is called when a representative index build completes.
	OnIndexBuild(representatives, centroids int, duration time.Duration, err error)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnIteration(int, float64, int, int, time.Duration) {}
func (NoopMetricsObserver) OnIndexBuild(int, int, time.Duration, error)       {}
