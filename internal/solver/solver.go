package solver

import (
	"context"
	"math"

	"github.com/ornilab/flapsweep/internal/wing"
)

// Solver runs flapping-wing cases against the external aerodynamics solver.
type Solver interface {
	// Probe checks that the solver can be invoked. It performs no
	// simulation work.
	Probe(ctx context.Context) error

	// Run executes one case synchronously and returns its force series.
	Run(ctx context.Context, spec wing.Spec) (*ForceSeries, error)
}

// ForceSeries holds the per-step wind-axes forces for one run, one sample
// per solver time step. Component slices are index-aligned with Times.
type ForceSeries struct {
	Times       []float64 `json:"times"`
	Lift        []float64 `json:"lift"`
	InducedDrag []float64 `json:"induced_drag"`
	SideForce   []float64 `json:"side_force"`
}

// Len returns the number of time steps in the series.
func (s *ForceSeries) Len() int {
	return len(s.Times)
}

// Validate checks that the series is non-empty, shape-consistent, and
// contains only finite values. SideForce may be omitted entirely.
func (s *ForceSeries) Validate() error {
	n := len(s.Times)
	if n == 0 {
		return ErrEmptySeries
	}
	if len(s.Lift) != n || len(s.InducedDrag) != n {
		return ErrSeriesShape
	}
	if len(s.SideForce) != 0 && len(s.SideForce) != n {
		return ErrSeriesShape
	}
	for _, vs := range [][]float64{s.Times, s.Lift, s.InducedDrag, s.SideForce} {
		if !finite(vs) {
			return ErrSeriesValues
		}
	}
	return nil
}

func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
