package collect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ornilab/flapsweep/internal/logging"
	"github.com/ornilab/flapsweep/internal/solver"
	"github.com/ornilab/flapsweep/internal/table"
	"github.com/ornilab/flapsweep/internal/wing"
)

// Config wires a Collector.
type Config struct {
	Solver solver.Solver
	Logger *slog.Logger
	// PrescribedWake selects the cheaper fixed-geometry wake model.
	PrescribedWake bool
	// LiftFloor marks cases with a mean lift below it as skipped in
	// sampling sweeps.
	LiftFloor float64
}

// Collector executes cases one at a time, in order, on the calling
// goroutine. Rows land in run order because nothing else writes.
type Collector struct {
	solver         solver.Solver
	logger         *slog.Logger
	prescribedWake bool
	liftFloor      float64
}

func New(cfg Config) *Collector {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Collector{
		solver:         cfg.Solver,
		logger:         logger,
		prescribedWake: cfg.PrescribedWake,
		liftFloor:      cfg.LiftFloor,
	}
}

// Probe checks that the solver is available without running a case.
func (c *Collector) Probe(ctx context.Context) error {
	return c.solver.Probe(ctx)
}

// RunOne executes a single case and returns its averaged record along with
// the raw force series.
func (c *Collector) RunOne(ctx context.Context, wc wing.Case) (Record, *solver.ForceSeries, error) {
	if err := wc.Validate(); err != nil {
		return Record{}, nil, err
	}
	spec := wc.Spec(c.prescribedWake)
	c.logger.Debug("case starting",
		"airfoil", wc.Airfoil, "wingspan", wc.Wingspan,
		"flapping_period", wc.FlappingPeriod, "air_speed", wc.AirSpeed,
		"angle_of_attack", wc.AngleOfAttack)
	c.logger.Log(ctx, logging.LevelTrace, "solver case payload", "spec", spec)

	series, err := c.solver.Run(ctx, spec)
	if err != nil {
		return Record{}, nil, err
	}
	c.logger.Log(ctx, logging.LevelTrace, "solver series", "steps", series.Len(),
		"lift", series.Lift, "induced_drag", series.InducedDrag)
	return NewRecord(wc, series), series, nil
}

// Run executes every case in order, appending one row per case to the
// results table at output. The first failure stops the sweep and
// propagates. The solver is probed before the table is opened, so a missing
// executable fails before any file exists.
func (c *Collector) Run(ctx context.Context, cases []wing.Case, output string) error {
	if err := c.solver.Probe(ctx); err != nil {
		return err
	}
	w, err := table.NewWriter(output, table.ResultColumns)
	if err != nil {
		return err
	}

	c.logger.Info("sweep started", "cases", len(cases), "output", output)
	for i, wc := range cases {
		rec, _, err := c.RunOne(ctx, wc)
		if err != nil {
			return fmt.Errorf("case %d/%d: %w", i+1, len(cases), err)
		}
		if err := w.Append(rec.Row()); err != nil {
			return err
		}
		c.logger.Info("case complete",
			"done", i+1, "total", len(cases), "airfoil", wc.Airfoil,
			"lift", rec.AverageLift, "induced_drag", rec.AverageInducedDrag)
	}
	c.logger.Info("sweep complete", "cases", len(cases), "output", output)
	return nil
}

// Sample executes cases with per-case fault recording: ok rows append to
// the status table at output, failed cases append to the table at
// errOutput, and cases whose mean lift falls below the floor are skipped
// with a log line only. The error table is not created until a case
// actually fails.
func (c *Collector) Sample(ctx context.Context, cases []wing.Case, output, errOutput string) (Tally, error) {
	if err := c.solver.Probe(ctx); err != nil {
		return Tally{}, err
	}
	w, err := table.NewWriter(output, table.StatusColumns)
	if err != nil {
		return Tally{}, err
	}

	var ew *table.Writer
	var tally Tally
	total := len(cases)
	c.logger.Info("sampling started", "cases", total, "output", output)
	for _, wc := range cases {
		out := c.sampleOne(ctx, wc)
		tally.Add(out.Status)

		switch out.Status {
		case StatusOK:
			if err := w.Append(out.Row()); err != nil {
				return tally, err
			}
		case StatusSkipped:
			c.logger.Info("case skipped", "reason", out.Err)
		default:
			if ew == nil {
				if ew, err = table.NewWriter(errOutput, table.StatusColumns); err != nil {
					return tally, err
				}
			}
			if err := ew.Append(out.Row()); err != nil {
				return tally, err
			}
			c.logger.Error("case failed", "error", out.Err)
		}
		c.logger.Info("progress",
			"done", tally.Total(), "total", total,
			"ok", tally.OK, "skipped", tally.Skipped, "err", tally.Errors)
	}
	c.logger.Info("sampling complete",
		"ok", tally.OK, "skipped", tally.Skipped, "err", tally.Errors)
	return tally, nil
}

func (c *Collector) sampleOne(ctx context.Context, wc wing.Case) Outcome {
	out := Outcome{Case: wc, Status: StatusError}
	rec, _, err := c.RunOne(ctx, wc)
	if err != nil {
		out.Err = err.Error()
		return out
	}
	if rec.AverageLift < c.liftFloor {
		out.Status = StatusSkipped
		out.Err = fmt.Sprintf("extreme negative lift (lift=%.2f N)", rec.AverageLift)
		return out
	}
	out.Status = StatusOK
	out.Lift = rec.AverageLift
	out.InducedDrag = rec.AverageInducedDrag
	out.Err = ""
	return out
}
