package sweep

import "github.com/ornilab/flapsweep/internal/wing"

// Baseline reference point. Geometry sweeps hold the kinematics here and
// kinematics sweeps hold the wing here.
const (
	BaselineAirfoil        = "naca8304"
	BaselineWingspan       = 0.8
	BaselineAspectRatio    = 2.0
	BaselineTaperRatio     = 0.4
	BaselineFlappingPeriod = 0.5
	BaselineAirSpeed       = 4.0
	BaselineAngleOfAttack  = 15.0
)

// BaselineCase is the reference wing and kinematics as a single case.
func BaselineCase() wing.Case {
	return wing.Case{
		Airfoil:        BaselineAirfoil,
		Wingspan:       BaselineWingspan,
		AspectRatio:    BaselineAspectRatio,
		TaperRatio:     BaselineTaperRatio,
		FlappingPeriod: BaselineFlappingPeriod,
		AirSpeed:       BaselineAirSpeed,
		AngleOfAttack:  BaselineAngleOfAttack,
	}
}

// BaselineCases expands a one-factor-group-at-a-time sweep: every geometry
// combination at the baseline kinematics, then every kinematics combination
// on the baseline wing. Within each phase the nesting matches [Axes.Cases].
func BaselineCases(a Axes) []wing.Case {
	geom := Axes{
		Airfoils:        a.Airfoils,
		Wingspans:       a.Wingspans,
		AspectRatios:    a.AspectRatios,
		TaperRatios:     a.TaperRatios,
		FlappingPeriods: []float64{BaselineFlappingPeriod},
		AirSpeeds:       []float64{BaselineAirSpeed},
		AnglesOfAttack:  []float64{BaselineAngleOfAttack},
	}
	kin := Axes{
		Airfoils:        []string{BaselineAirfoil},
		Wingspans:       []float64{BaselineWingspan},
		AspectRatios:    []float64{BaselineAspectRatio},
		TaperRatios:     []float64{BaselineTaperRatio},
		FlappingPeriods: a.FlappingPeriods,
		AirSpeeds:       a.AirSpeeds,
		AnglesOfAttack:  a.AnglesOfAttack,
	}
	return append(geom.Cases(), kin.Cases()...)
}
