package solver

import (
	"context"
	"sync"

	"github.com/ornilab/flapsweep/internal/wing"
)

// Mock implements Solver for testing. It allows scripting series and
// errors per run, simulating an unavailable solver, and tracking calls
// for verification.
type Mock struct {
	mu sync.Mutex

	// Configured responses
	series   *ForceSeries
	runFunc  func(spec wing.Spec) (*ForceSeries, error)
	err      error
	probeErr error

	// Call tracking
	RunCalls   []wing.Spec
	ProbeCalls int
}

// NewMock creates a Mock that is available and returns a small constant
// series by default.
func NewMock() *Mock {
	return &Mock{
		RunCalls: make([]wing.Spec, 0),
	}
}

// WithSeries configures the series returned by every Run.
func (m *Mock) WithSeries(s *ForceSeries) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.series = s
	return m
}

// WithRunFunc configures a per-case response, overriding WithSeries.
func (m *Mock) WithRunFunc(f func(spec wing.Spec) (*ForceSeries, error)) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runFunc = f
	return m
}

// WithError configures the error returned by Run.
func (m *Mock) WithError(err error) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithProbeError configures the error returned by Probe, simulating a
// missing or broken solver installation.
func (m *Mock) WithProbeError(err error) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probeErr = err
	return m
}

// Probe implements Solver.Probe.
func (m *Mock) Probe(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProbeCalls++
	return m.probeErr
}

// Run implements Solver.Run. It records the call and returns the
// configured response.
func (m *Mock) Run(ctx context.Context, spec wing.Spec) (*ForceSeries, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RunCalls = append(m.RunCalls, spec)

	if m.probeErr != nil {
		return nil, m.probeErr
	}
	if m.runFunc != nil {
		return m.runFunc(spec)
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.series != nil {
		return m.series, nil
	}
	return Constant(4, 0.01, 1.0, 0.1), nil
}

// RunCount returns the number of times Run was called.
func (m *Mock) RunCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RunCalls)
}

// Reset clears call tracking and configured responses.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.series = nil
	m.runFunc = nil
	m.err = nil
	m.probeErr = nil
	m.RunCalls = make([]wing.Spec, 0)
	m.ProbeCalls = 0
}

// Constant builds a series of n steps spaced dt apart with fixed per-step
// lift and induced drag. Handy for scripting mocks.
func Constant(n int, dt, lift, drag float64) *ForceSeries {
	s := &ForceSeries{
		Times:       make([]float64, n),
		Lift:        make([]float64, n),
		InducedDrag: make([]float64, n),
		SideForce:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		s.Times[i] = float64(i) * dt
		s.Lift[i] = lift
		s.InducedDrag[i] = drag
	}
	return s
}
