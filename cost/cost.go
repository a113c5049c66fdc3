package cost

import (
	"github.com/hupe1980/unitsel/distance"
	"github.com/hupe1980/unitsel/lattice"
)

// Unit is a candidate speech unit.
type Unit struct {
	// ID identifies the unit. Units cut from the same recording carry
	// consecutive IDs in recording order.
	ID    uint64
	Start []float64 // Features of the first frame.
	End   []float64 // Features of the last frame.
}

// Target is the desired feature vector at one lattice column.
type Target struct {
	Features []float64
}

var (
	_ lattice.TargetCoster[Target, Unit] = (*FeatureTargetCost)(nil)
	_ lattice.JoinCoster[Target, Unit]   = (*FeatureJoinCost)(nil)
)

// FeatureTargetCost is the weighted distance between a target's features
// and the mean of a unit's start and end frames.
type FeatureTargetCost struct {
	metric distance.Metric
	weight float64
	fn     distance.Func
}

// NewFeatureTargetCost creates a target cost calculator.
func NewFeatureTargetCost(m distance.Metric, weight float64) (*FeatureTargetCost, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return nil, err
	}
	return &FeatureTargetCost{metric: m, weight: weight, fn: fn}, nil
}

// Metric returns the configured metric.
func (c *FeatureTargetCost) Metric() distance.Metric { return c.metric }

// Weight returns the configured weight.
func (c *FeatureTargetCost) Weight() float64 { return c.weight }

// TargetCost implements lattice.TargetCoster.
func (c *FeatureTargetCost) TargetCost(target Target, unit Unit) float64 {
	mid := make([]float64, len(unit.Start))
	for i := range mid {
		mid[i] = (unit.Start[i] + unit.End[i]) / 2
	}
	return c.weight * c.fn(target.Features, mid)
}

// FeatureJoinCost is the weighted distance between the last frame of the
// left unit and the first frame of the right unit.
type FeatureJoinCost struct {
	metric     distance.Metric
	weight     float64
	contiguous bool
	fn         distance.Func
}

// JoinOption configures a FeatureJoinCost.
type JoinOption func(*FeatureJoinCost)

// WithContiguousBonus makes joins between units adjacent in the source
// recording (right.ID == left.ID+1) free. Enabled by default.
func WithContiguousBonus(enabled bool) JoinOption {
	return func(c *FeatureJoinCost) {
		c.contiguous = enabled
	}
}

// NewFeatureJoinCost creates a join cost calculator.
func NewFeatureJoinCost(m distance.Metric, weight float64, opts ...JoinOption) (*FeatureJoinCost, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return nil, err
	}
	c := &FeatureJoinCost{metric: m, weight: weight, contiguous: true, fn: fn}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Metric returns the configured metric.
func (c *FeatureJoinCost) Metric() distance.Metric { return c.metric }

// Weight returns the configured weight.
func (c *FeatureJoinCost) Weight() float64 { return c.weight }

// JoinCost implements lattice.JoinCoster. Targets are ignored.
func (c *FeatureJoinCost) JoinCost(_, _ Target, left, right Unit) float64 {
	if c.contiguous && right.ID == left.ID+1 {
		return 0
	}
	return c.weight * c.fn(left.End, right.Start)
}
