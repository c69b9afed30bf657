package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/ornilab/flapsweep/internal/solver"
)

// SeriesChart renders the lift and induced drag curves of a force series
// as stacked ASCII charts for quick terminal inspection.
func SeriesChart(s *solver.ForceSeries, width int) string {
	lift := asciigraph.Plot(s.Lift, asciigraph.Height(8), asciigraph.Width(width), asciigraph.Caption("Lift (N)"))
	drag := asciigraph.Plot(s.InducedDrag, asciigraph.Height(8), asciigraph.Width(width), asciigraph.Caption("Induced drag (N)"))
	return lift + "\n\n" + drag
}
