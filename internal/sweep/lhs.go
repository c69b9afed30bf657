package sweep

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/ornilab/flapsweep/internal/wing"
)

// Range is a closed sampling interval. A range with Hi <= Lo collapses to
// the constant Lo.
type Range struct {
	Lo float64 `json:"lo" yaml:"lo"`
	Hi float64 `json:"hi" yaml:"hi"`
}

// Space bounds the continuous case parameters for Latin hypercube sampling.
type Space struct {
	Wingspan       Range `json:"wingspan" yaml:"wingspan"`
	AspectRatio    Range `json:"aspect_ratio" yaml:"aspect_ratio"`
	TaperRatio     Range `json:"taper_ratio" yaml:"taper_ratio"`
	FlappingPeriod Range `json:"flapping_period" yaml:"flapping_period"`
	AirSpeed       Range `json:"air_speed" yaml:"air_speed"`
	AngleOfAttack  Range `json:"angle_of_attack" yaml:"angle_of_attack"`
}

// DefaultSpace returns the bounds used for the balanced dataset runs.
func DefaultSpace() Space {
	return Space{
		Wingspan:       Range{Lo: 0.4, Hi: 1.2},
		AspectRatio:    Range{Lo: 1.25, Hi: 4.0},
		TaperRatio:     Range{Lo: 0.2, Hi: 0.6},
		FlappingPeriod: Range{Lo: 0.4, Hi: 1.2},
		AirSpeed:       Range{Lo: 3.0, Hi: 5.0},
		AngleOfAttack:  Range{Lo: 2.0, Hi: 30.0},
	}
}

func (s Space) intervals() []r1.Interval {
	rs := []Range{
		s.Wingspan, s.AspectRatio, s.TaperRatio,
		s.FlappingPeriod, s.AirSpeed, s.AngleOfAttack,
	}
	bnds := make([]r1.Interval, len(rs))
	for i, r := range rs {
		if r.Hi <= r.Lo {
			bnds[i] = r1.Interval{Min: r.Lo, Max: r.Lo}
			continue
		}
		bnds[i] = r1.Interval{Min: r.Lo, Max: r.Hi}
	}
	return bnds
}

// Sample draws n Latin hypercube cases per airfoil. Stratification is per
// airfoil: within each airfoil's batch every parameter visits each of its n
// quantile cells exactly once, so the dataset stays balanced across the
// catalog.
func (s Space) Sample(airfoils []string, n int, src rand.Source) []wing.Case {
	if n <= 0 || len(airfoils) == 0 {
		return nil
	}
	sampler := samplemv.LatinHypercube{
		Q:   distmv.NewUniform(s.intervals(), src),
		Src: src,
	}
	cases := make([]wing.Case, 0, len(airfoils)*n)
	batch := mat.NewDense(n, 6, nil)
	for _, af := range airfoils {
		sampler.Sample(batch)
		for i := 0; i < n; i++ {
			cases = append(cases, wing.Case{
				Airfoil:        af,
				Wingspan:       batch.At(i, 0),
				AspectRatio:    batch.At(i, 1),
				TaperRatio:     batch.At(i, 2),
				FlappingPeriod: batch.At(i, 3),
				AirSpeed:       batch.At(i, 4),
				AngleOfAttack:  batch.At(i, 5),
			})
		}
	}
	return cases
}

// Source returns a seeded random source for sampling. Seed 0 derives one
// from the clock, so repeat runs diverge unless a seed is pinned.
func Source(seed int64) rand.Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.NewPCG(uint64(seed), uint64(seed))
}
