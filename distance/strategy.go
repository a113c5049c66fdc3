package distance

import (
	"github.com/hupe1980/unitsel/cluster"
)

// Compile time check to ensure VectorStrategy satisfies cluster.Strategy.
var _ cluster.Strategy[[]float64] = (*VectorStrategy)(nil)

// VectorStrategy clusters feature vectors under a fixed metric. The center
// of a member set is its arithmetic mean.
type VectorStrategy struct {
	metric Metric
	fn     Func
}

// NewVectorStrategy returns a strategy for the given metric.
func NewVectorStrategy(m Metric) (*VectorStrategy, error) {
	fn, err := Provider(m)
	if err != nil {
		return nil, err
	}
	return &VectorStrategy{metric: m, fn: fn}, nil
}

// Metric returns the configured metric.
func (s *VectorStrategy) Metric() Metric { return s.metric }

// Distance implements cluster.Strategy.
func (s *VectorStrategy) Distance(a, b []float64) float64 {
	return s.fn(a, b)
}

// Center implements cluster.Strategy. It returns cluster.ErrNoSamples for
// an empty member set and *DimensionMismatchError for ragged input.
func (s *VectorStrategy) Center(members [][]float64) ([]float64, error) {
	if len(members) == 0 {
		return nil, cluster.ErrNoSamples
	}
	return Mean(members)
}
