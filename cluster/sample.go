package cluster

// Sample is a point to be clustered.
//
// Value is owned by the caller and never modified by the engine. The
// centroid back-reference is engine-owned state: only KMeans writes it.
type Sample[P any] struct {
	Value P

	centroid *Sample[P]
}

// NewSample wraps a value as an unassigned sample.
func NewSample[P any](value P) *Sample[P] {
	return &Sample[P]{Value: value}
}

// NewSamples wraps every value as an unassigned sample, preserving order.
func NewSamples[P any](values []P) []*Sample[P] {
	samples := make([]*Sample[P], len(values))
	for i, v := range values {
		samples[i] = &Sample[P]{Value: v}
	}
	return samples
}

// Centroid returns the representative of the cluster the sample currently
// belongs to, or nil before the first assignment pass.
func (s *Sample[P]) Centroid() *Sample[P] {
	return s.centroid
}

// Strategy supplies distances and centroids for sample payloads of type P.
type Strategy[P any] interface {
	// Distance returns a non-negative dissimilarity between a and b.
	Distance(a, b P) float64

	// Center computes the centroid of a non-empty member set.
	// Implementations should return ErrNoSamples for an empty set.
	Center(members []P) (P, error)
}

// StrategyFuncs adapts a pair of functions to the Strategy interface.
type StrategyFuncs[P any] struct {
	DistanceFunc func(a, b P) float64
	CenterFunc   func(members []P) (P, error)
}

// Distance implements Strategy.
func (f StrategyFuncs[P]) Distance(a, b P) float64 { return f.DistanceFunc(a, b) }

// Center implements Strategy.
func (f StrategyFuncs[P]) Center(members []P) (P, error) { return f.CenterFunc(members) }

// Group returns the cluster membership of samples keyed by centroid identity.
// Unassigned samples are skipped.
func Group[P any](samples []*Sample[P]) map[*Sample[P]][]*Sample[P] {
	groups := make(map[*Sample[P]][]*Sample[P])
	for _, s := range samples {
		if s.centroid == nil {
			continue
		}
		groups[s.centroid] = append(groups[s.centroid], s)
	}
	return groups
}
