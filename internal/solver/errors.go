package solver

import (
	"errors"
	"fmt"

	"github.com/ornilab/flapsweep/internal/wing"
)

// Domain errors for solver operations.
var (
	// ErrUnavailable indicates the external solver could not be located
	// or did not validate.
	ErrUnavailable = errors.New("solver: external solver unavailable")

	// ErrEmptySeries indicates the solver returned no time steps.
	ErrEmptySeries = errors.New("solver: empty force series")

	// ErrSeriesShape indicates force components of mismatched length.
	ErrSeriesShape = errors.New("solver: force series length mismatch")

	// ErrSeriesValues indicates non-finite forces (NaN or Inf detected).
	ErrSeriesValues = errors.New("solver: invalid force values (NaN or Inf detected)")
)

// RunError wraps a solver failure with the case that produced it.
type RunError struct {
	Case    wing.Case
	Stderr  string
	Wrapped error
}

func (e *RunError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%v (stderr: %s)", e.Wrapped, e.Stderr)
	}
	return e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
