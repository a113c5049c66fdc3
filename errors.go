package unitsel

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unitsel/cluster"
	"github.com/hupe1980/unitsel/lattice"
)

// ErrCallerData matches every *CallerDataError with errors.Is.
var ErrCallerData = errors.New("invalid caller data")

// CallerDataError indicates that the caller supplied input the engines
// cannot work with (an empty lattice, no samples, a non-positive k, ...).
// It is detected before any work is done.
//
// The original engine error can be accessed via errors.Unwrap.
type CallerDataError struct {
	Op    string
	cause error
}

func (e *CallerDataError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrCallerData, e.cause)
}

func (e *CallerDataError) Unwrap() error { return e.cause }

// Is reports whether target is ErrCallerData.
func (e *CallerDataError) Is(target error) bool { return target == ErrCallerData }

// translateError wraps engine caller data errors in *CallerDataError.
// Strategy and context errors pass through unchanged.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		lattice.ErrEmptyLattice,
		lattice.ErrEmptyColumn,
		lattice.ErrNilCoster,
		cluster.ErrNoSamples,
		cluster.ErrInvalidK,
		cluster.ErrNilStrategy,
		cluster.ErrNoCentroids,
	} {
		if errors.Is(err, sentinel) {
			return &CallerDataError{Op: op, cause: err}
		}
	}

	return err
}
