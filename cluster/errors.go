package cluster

import "errors"

var (
	// ErrInvalidK is returned when the requested cluster count is not positive.
	ErrInvalidK = errors.New("cluster: k must be positive")

	// ErrNilStrategy is returned when no sample strategy is supplied.
	ErrNilStrategy = errors.New("cluster: strategy must not be nil")

	// ErrNoSamples is returned when clustering is requested over zero samples.
	// Strategy implementations return it from Center when given no members.
	ErrNoSamples = errors.New("cluster: no samples")

	// ErrNoCentroids is returned by Assign and BuildRepresentativeIndex
	// before centroids have been initialized.
	ErrNoCentroids = errors.New("cluster: centroids not initialized")
)
