package collect

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ornilab/flapsweep/internal/solver"
	"github.com/ornilab/flapsweep/internal/table"
	"github.com/ornilab/flapsweep/internal/wing"
)

// Record is one results-table row: a case and the arithmetic means of its
// force series over all solver time steps.
type Record struct {
	Case               wing.Case
	AverageLift        float64
	AverageInducedDrag float64
}

// NewRecord averages a force series for a case.
func NewRecord(c wing.Case, s *solver.ForceSeries) Record {
	return Record{
		Case:               c,
		AverageLift:        stat.Mean(s.Lift, nil),
		AverageInducedDrag: stat.Mean(s.InducedDrag, nil),
	}
}

// Row serializes the record in [table.ResultColumns] order.
func (r Record) Row() []string {
	return []string{
		r.Case.Airfoil,
		table.Cell(r.Case.Wingspan),
		table.Cell(r.Case.AspectRatio),
		table.Cell(r.Case.TaperRatio),
		table.Cell(r.Case.FlappingPeriod),
		table.Cell(r.Case.AirSpeed),
		table.Cell(r.Case.AngleOfAttack),
		table.Cell(r.AverageLift),
		table.Cell(r.AverageInducedDrag),
	}
}
