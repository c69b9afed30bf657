package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/ornilab/flapsweep/internal/wing"
)

// Exec invokes the external unsteady aerodynamics solver as a subprocess.
// The case spec is written to stdin as JSON and the per-step force series
// is read back from stdout. Each run is bounded by a wall-clock timeout.
type Exec struct {
	command string
	path    string
	timeout time.Duration
}

// ExecConfig configures the subprocess solver.
type ExecConfig struct {
	// Command is the solver executable name or path.
	Command string

	// Timeout is the wall-clock limit for a single case.
	Timeout time.Duration
}

// DefaultExecConfig returns an ExecConfig with the stock solver command
// and a per-case timeout sized for the baseline discretization.
func DefaultExecConfig() ExecConfig {
	return ExecConfig{
		Command: "ptera-solver",
		Timeout: 10 * time.Minute,
	}
}

// NewExec creates a subprocess solver from cfg.
func NewExec(cfg ExecConfig) *Exec {
	if cfg.Command == "" {
		cfg.Command = "ptera-solver"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Minute
	}
	return &Exec{
		command: cfg.Command,
		timeout: cfg.Timeout,
	}
}

// Probe resolves the solver command on PATH and validates it by running
// --version. It returns ErrUnavailable when either step fails.
func (e *Exec) Probe(ctx context.Context) error {
	path, err := exec.LookPath(e.command)
	if err != nil {
		return fmt.Errorf("%w: %q not found on PATH", ErrUnavailable, e.command)
	}
	if !e.validate(ctx, path) {
		return fmt.Errorf("%w: %s failed --version check", ErrUnavailable, path)
	}
	e.path = path
	return nil
}

// Path returns the resolved solver executable, or "" before a successful
// Probe.
func (e *Exec) Path() string {
	return e.path
}

// Version runs the solver with --version and returns its output.
func (e *Exec) Version(ctx context.Context) (string, error) {
	if e.path == "" {
		if err := e.Probe(ctx); err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, e.path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%w: --version failed: %v", ErrUnavailable, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// validate checks that the executable at path is a working solver by
// running it with --version and verifying it exits successfully.
func (e *Exec) validate(ctx context.Context, path string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	return cmd.Run() == nil
}

// Run executes one case: the case spec is written to the solver as JSON
// on stdin and the force series is read back from stdout.
func (e *Exec) Run(ctx context.Context, spec wing.Spec) (*ForceSeries, error) {
	if e.path == "" {
		if err := e.Probe(ctx); err != nil {
			return nil, err
		}
	}

	payload, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encoding case spec: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.path, "--case", "-")
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, &RunError{
				Case:    spec.Case,
				Wrapped: fmt.Errorf("solver timed out after %v", e.timeout),
			}
		}
		return nil, &RunError{
			Case:    spec.Case,
			Stderr:  strings.TrimSpace(stderr.String()),
			Wrapped: fmt.Errorf("solver failed: %w", err),
		}
	}

	series, err := decodeSeries(stdout.Bytes())
	if err != nil {
		return nil, &RunError{Case: spec.Case, Wrapped: err}
	}
	return series, nil
}

// decodeSeries parses and validates a solver stdout payload.
func decodeSeries(data []byte) (*ForceSeries, error) {
	var s ForceSeries
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding force series: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
