package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLattice indicates a lattice without columns.
	ErrEmptyLattice = errors.New("lattice: lattice has no columns")

	// ErrEmptyColumn indicates a column without rows.
	ErrEmptyColumn = errors.New("lattice: column has no rows")

	// ErrNilCoster indicates a missing target or join cost calculator.
	ErrNilCoster = errors.New("lattice: cost calculator must not be nil")

	// ErrShapeMismatch indicates that a Table was built from targets and
	// candidate columns of different lengths.
	ErrShapeMismatch = errors.New("lattice: targets and candidate columns differ in length")
)

// EmptyColumnError reports which column has no rows.
// It matches ErrEmptyColumn with errors.Is.
type EmptyColumnError struct {
	Column int
}

func (e *EmptyColumnError) Error() string {
	return fmt.Sprintf("lattice: column %d has no rows", e.Column)
}

func (e *EmptyColumnError) Unwrap() error { return ErrEmptyColumn }
