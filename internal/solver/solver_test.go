package solver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ornilab/flapsweep/internal/wing"
)

func TestForceSeriesValidate(t *testing.T) {
	tests := []struct {
		name    string
		series  ForceSeries
		wantErr error
	}{
		{
			name:    "empty",
			series:  ForceSeries{},
			wantErr: ErrEmptySeries,
		},
		{
			name: "valid",
			series: ForceSeries{
				Times:       []float64{0, 0.01, 0.02},
				Lift:        []float64{1.0, 1.1, 0.9},
				InducedDrag: []float64{0.1, 0.12, 0.08},
				SideForce:   []float64{0, 0, 0},
			},
			wantErr: nil,
		},
		{
			name: "side_force_omitted",
			series: ForceSeries{
				Times:       []float64{0, 0.01},
				Lift:        []float64{1.0, 1.2},
				InducedDrag: []float64{0.1, 0.1},
			},
			wantErr: nil,
		},
		{
			name: "mismatched_lengths",
			series: ForceSeries{
				Times:       []float64{0, 0.01},
				Lift:        []float64{1.0},
				InducedDrag: []float64{0.1, 0.1},
			},
			wantErr: ErrSeriesShape,
		},
		{
			name: "nan_lift",
			series: ForceSeries{
				Times:       []float64{0, 0.01},
				Lift:        []float64{1.0, math.NaN()},
				InducedDrag: []float64{0.1, 0.1},
			},
			wantErr: ErrSeriesValues,
		},
		{
			name: "inf_drag",
			series: ForceSeries{
				Times:       []float64{0, 0.01},
				Lift:        []float64{1.0, 1.0},
				InducedDrag: []float64{0.1, math.Inf(1)},
			},
			wantErr: ErrSeriesValues,
		},
	}

	for _, tt := range tests {
		err := tt.series.Validate()
		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestDecodeSeries(t *testing.T) {
	data := []byte(`{"times":[0,0.01],"lift":[1.5,2.5],"induced_drag":[0.2,0.4],"side_force":[0,0]}`)

	s, err := decodeSeries(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 steps, got %d", s.Len())
	}
	if s.Lift[1] != 2.5 {
		t.Errorf("expected lift 2.5, got %v", s.Lift[1])
	}
}

func TestDecodeSeries_Malformed(t *testing.T) {
	if _, err := decodeSeries([]byte("not json")); err == nil {
		t.Error("expected error for malformed payload")
	}

	short := []byte(`{"times":[0,0.01],"lift":[1.0],"induced_drag":[0.1,0.1]}`)
	if _, err := decodeSeries(short); !errors.Is(err, ErrSeriesShape) {
		t.Errorf("expected ErrSeriesShape, got %v", err)
	}
}

func TestExecProbe_MissingCommand(t *testing.T) {
	sv := NewExec(ExecConfig{Command: "flapsweep-no-such-solver"})

	err := sv.Probe(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if sv.Path() != "" {
		t.Errorf("path should stay empty after failed probe, got %q", sv.Path())
	}
}

func TestMockRun(t *testing.T) {
	m := NewMock().WithSeries(Constant(3, 0.01, 2.0, 0.5))

	spec := wing.Case{Airfoil: "naca8304", Wingspan: 0.8, AspectRatio: 2, TaperRatio: 0.4,
		FlappingPeriod: 0.5, AirSpeed: 4, AngleOfAttack: 15}.Spec(true)

	s, err := m.Run(context.Background(), spec)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 steps, got %d", s.Len())
	}
	if m.RunCount() != 1 {
		t.Errorf("expected 1 recorded call, got %d", m.RunCount())
	}
	if m.RunCalls[0].Airfoil != "naca8304" {
		t.Errorf("recorded wrong spec: %+v", m.RunCalls[0])
	}
}

func TestMockErrors(t *testing.T) {
	boom := errors.New("solver exploded")
	m := NewMock().WithError(boom)

	if _, err := m.Run(context.Background(), wing.Spec{}); !errors.Is(err, boom) {
		t.Errorf("expected configured error, got %v", err)
	}

	m.Reset()
	m.WithProbeError(ErrUnavailable)
	if err := m.Probe(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected probe error, got %v", err)
	}
	if m.ProbeCalls != 1 {
		t.Errorf("expected 1 probe call, got %d", m.ProbeCalls)
	}
}

func TestRunErrorUnwrap(t *testing.T) {
	inner := errors.New("exit status 3")
	err := &RunError{
		Case:    wing.Case{Airfoil: "goe225"},
		Stderr:  "mesh generation failed",
		Wrapped: inner,
	}

	if !errors.Is(err, inner) {
		t.Error("RunError should unwrap to the inner error")
	}
	msg := err.Error()
	if msg == "" || msg == inner.Error() {
		t.Errorf("stderr not surfaced in message: %q", msg)
	}
}

func TestConstant(t *testing.T) {
	s := Constant(5, 0.02, 1.5, 0.3)
	if err := s.Validate(); err != nil {
		t.Fatalf("constant series invalid: %v", err)
	}
	if s.Times[4] != 0.08 {
		t.Errorf("expected final time 0.08, got %v", s.Times[4])
	}
	if s.Lift[2] != 1.5 || s.InducedDrag[2] != 0.3 {
		t.Errorf("unexpected forces: %v %v", s.Lift[2], s.InducedDrag[2])
	}
}
