package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ornilab/flapsweep/internal/solver"
)

// SavePNG renders the lift and induced drag curves against time and writes
// them to path. The format follows the file extension, so .png, .svg, and
// .pdf all work.
func SavePNG(s *solver.ForceSeries, title, path string) error {
	liftPts := make(plotter.XYs, s.Len())
	dragPts := make(plotter.XYs, s.Len())
	for i := range s.Times {
		liftPts[i].X = s.Times[i]
		liftPts[i].Y = s.Lift[i]
		dragPts[i].X = s.Times[i]
		dragPts[i].Y = s.InducedDrag[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Force (N)"

	if err := plotutil.AddLinePoints(p,
		"Lift", liftPts,
		"Induced drag", dragPts,
	); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
