package collect

import (
	"github.com/ornilab/flapsweep/internal/table"
	"github.com/ornilab/flapsweep/internal/wing"
)

// Status classifies a sampled case's outcome.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Outcome is one recording-mode result: the case, its averaged forces when
// the run succeeded, and the failure text otherwise.
type Outcome struct {
	Case        wing.Case
	Lift        float64
	InducedDrag float64
	Status      Status
	Err         string
}

// Row serializes the outcome in [table.StatusColumns] order. The force
// cells stay empty unless the case ran to completion.
func (o Outcome) Row() []string {
	lift, drag := "", ""
	if o.Status == StatusOK {
		lift, drag = table.Cell(o.Lift), table.Cell(o.InducedDrag)
	}
	return []string{
		o.Case.Airfoil,
		table.Cell(o.Case.Wingspan),
		table.Cell(o.Case.AspectRatio),
		table.Cell(o.Case.TaperRatio),
		table.Cell(o.Case.FlappingPeriod),
		table.Cell(o.Case.AirSpeed),
		table.Cell(o.Case.AngleOfAttack),
		lift, drag,
		string(o.Status), o.Err,
	}
}

// Tally counts outcomes as a sampling sweep progresses.
type Tally struct {
	OK      int
	Skipped int
	Errors  int
}

func (t *Tally) Add(s Status) {
	switch s {
	case StatusOK:
		t.OK++
	case StatusSkipped:
		t.Skipped++
	default:
		t.Errors++
	}
}

func (t Tally) Total() int {
	return t.OK + t.Skipped + t.Errors
}
