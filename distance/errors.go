package distance

import (
	"errors"
	"fmt"
)

// ErrNoVectors is returned when an aggregate is requested over zero vectors.
var ErrNoVectors = errors.New("distance: no vectors")

// DimensionMismatchError indicates vectors of different dimensionality.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("distance: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
