package sweep_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ornilab/flapsweep/internal/sweep"
	"github.com/ornilab/flapsweep/internal/wing"
)

var _ = Describe("Axes", func() {
	var axes sweep.Axes

	BeforeEach(func() {
		axes = sweep.Axes{
			Airfoils:        []string{"naca8304", "goe225"},
			Wingspans:       []float64{0.4, 0.8},
			AspectRatios:    []float64{2},
			TaperRatios:     []float64{0.4},
			FlappingPeriods: []float64{0.5, 1.0},
			AirSpeeds:       []float64{4},
			AnglesOfAttack:  []float64{15, 25},
		}
	})

	It("counts the Cartesian product", func() {
		Expect(axes.Len()).To(Equal(16))
	})

	It("expands every combination in run order", func() {
		cases := axes.Cases()
		Expect(cases).To(HaveLen(16))

		Expect(cases[0]).To(Equal(wing.Case{
			Airfoil: "naca8304", Wingspan: 0.4, AspectRatio: 2, TaperRatio: 0.4,
			FlappingPeriod: 0.5, AirSpeed: 4, AngleOfAttack: 15,
		}))
		// angle of attack is the innermost axis
		Expect(cases[1].AngleOfAttack).To(Equal(25.0))
		Expect(cases[1].FlappingPeriod).To(Equal(0.5))
		// airfoil is the outermost
		Expect(cases[7].Airfoil).To(Equal("naca8304"))
		Expect(cases[8].Airfoil).To(Equal("goe225"))
	})

	It("reports an empty grid when an axis has no values", func() {
		axes.AirSpeeds = nil
		Expect(axes.Len()).To(BeZero())
		Expect(axes.Cases()).To(BeEmpty())
	})
})

var _ = Describe("Space", func() {
	It("draws n samples per airfoil within bounds", func() {
		space := sweep.DefaultSpace()
		cases := space.Sample([]string{"naca8304", "naca0012"}, 10, sweep.Source(1))

		Expect(cases).To(HaveLen(20))
		for _, c := range cases[:10] {
			Expect(c.Airfoil).To(Equal("naca8304"))
		}
		for _, c := range cases[10:] {
			Expect(c.Airfoil).To(Equal("naca0012"))
		}
		for _, c := range cases {
			Expect(c.Wingspan).To(And(BeNumerically(">=", 0.4), BeNumerically("<", 1.2)))
			Expect(c.AngleOfAttack).To(And(BeNumerically(">=", 2.0), BeNumerically("<", 30.0)))
			Expect(c.Validate()).To(Succeed())
		}
	})

	It("visits each quantile cell exactly once per axis", func() {
		space := sweep.DefaultSpace()
		n := 8
		cases := space.Sample([]string{"goe225"}, n, sweep.Source(7))

		cells := map[int]int{}
		width := (1.2 - 0.4) / float64(n)
		for _, c := range cases {
			cells[int((c.Wingspan-0.4)/width)]++
		}
		Expect(cells).To(HaveLen(n))
	})

	It("collapses degenerate bounds to constants", func() {
		space := sweep.DefaultSpace()
		space.AirSpeed = sweep.Range{Lo: 4, Hi: 4}

		cases := space.Sample([]string{"naca2412"}, 5, sweep.Source(3))
		for _, c := range cases {
			Expect(c.AirSpeed).To(Equal(4.0))
		}
	})

	It("reproduces a draw from the same seed", func() {
		space := sweep.DefaultSpace()
		a := space.Sample(wing.Airfoils, 5, sweep.Source(42))
		b := space.Sample(wing.Airfoils, 5, sweep.Source(42))
		Expect(a).To(Equal(b))
	})

	It("returns nothing for a non-positive sample count", func() {
		Expect(sweep.DefaultSpace().Sample(wing.Airfoils, 0, sweep.Source(1))).To(BeEmpty())
	})
})

var _ = Describe("BaselineCases", func() {
	axes := sweep.Axes{
		Airfoils:        []string{"naca8304", "goe225"},
		Wingspans:       []float64{0.55, 0.9},
		AspectRatios:    []float64{1.6},
		TaperRatios:     []float64{0.3, 0.7},
		FlappingPeriods: []float64{0.3, 0.7, 1.1},
		AirSpeeds:       []float64{2, 4.5},
		AnglesOfAttack:  []float64{5, 40},
	}

	It("sweeps geometry first, at the baseline kinematics", func() {
		cases := sweep.BaselineCases(axes)
		Expect(len(cases)).To(Equal(8 + 12))
		for _, c := range cases[:8] {
			Expect(c.FlappingPeriod).To(Equal(sweep.BaselineFlappingPeriod))
			Expect(c.AirSpeed).To(Equal(sweep.BaselineAirSpeed))
			Expect(c.AngleOfAttack).To(Equal(sweep.BaselineAngleOfAttack))
		}
	})

	It("then sweeps kinematics on the baseline wing", func() {
		cases := sweep.BaselineCases(axes)
		for _, c := range cases[8:] {
			Expect(c.Airfoil).To(Equal(sweep.BaselineAirfoil))
			Expect(c.Wingspan).To(Equal(sweep.BaselineWingspan))
			Expect(c.AspectRatio).To(Equal(sweep.BaselineAspectRatio))
			Expect(c.TaperRatio).To(Equal(sweep.BaselineTaperRatio))
		}
	})
})

var _ = Describe("BaselineCase", func() {
	It("is a valid case with the documented planform", func() {
		c := sweep.BaselineCase()
		Expect(c.Validate()).To(Succeed())

		g := c.Geometry()
		Expect(g.RootChord).To(Equal(0.4))
		Expect(g.TipChord).To(Equal(0.16))
	})
})
