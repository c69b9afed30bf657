package sweep

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/ornilab/flapsweep/internal/wing"
)

// Axes lists explicit values for each case parameter. A grid sweep visits
// the full Cartesian product in a fixed nesting: airfoil outermost, then
// wingspan, aspect ratio, taper ratio, flapping period, air speed, and
// angle of attack innermost.
type Axes struct {
	Airfoils        []string  `json:"airfoils" yaml:"airfoils"`
	Wingspans       []float64 `json:"wingspans" yaml:"wingspans"`
	AspectRatios    []float64 `json:"aspect_ratios" yaml:"aspect_ratios"`
	TaperRatios     []float64 `json:"taper_ratios" yaml:"taper_ratios"`
	FlappingPeriods []float64 `json:"flapping_periods" yaml:"flapping_periods"`
	AirSpeeds       []float64 `json:"air_speeds" yaml:"air_speeds"`
	AnglesOfAttack  []float64 `json:"angles_of_attack" yaml:"angles_of_attack"`
}

func (a Axes) lens() []int {
	return []int{
		len(a.Airfoils), len(a.Wingspans), len(a.AspectRatios), len(a.TaperRatios),
		len(a.FlappingPeriods), len(a.AirSpeeds), len(a.AnglesOfAttack),
	}
}

// Len reports how many cases the grid expands to. An empty axis makes the
// grid empty.
func (a Axes) Len() int {
	for _, l := range a.lens() {
		if l == 0 {
			return 0
		}
	}
	return combin.Card(a.lens())
}

// Cases expands the grid in run order.
func (a Axes) Cases() []wing.Case {
	n := a.Len()
	if n == 0 {
		return nil
	}
	cases := make([]wing.Case, 0, n)
	gen := combin.NewCartesianGenerator(a.lens())
	idx := make([]int, 7)
	for gen.Next() {
		gen.Product(idx)
		cases = append(cases, wing.Case{
			Airfoil:        a.Airfoils[idx[0]],
			Wingspan:       a.Wingspans[idx[1]],
			AspectRatio:    a.AspectRatios[idx[2]],
			TaperRatio:     a.TaperRatios[idx[3]],
			FlappingPeriod: a.FlappingPeriods[idx[4]],
			AirSpeed:       a.AirSpeeds[idx[5]],
			AngleOfAttack:  a.AnglesOfAttack[idx[6]],
		})
	}
	return cases
}
