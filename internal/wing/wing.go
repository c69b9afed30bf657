package wing

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Domain errors for case construction.
var (
	// ErrUnknownAirfoil indicates an airfoil name missing from the catalog.
	ErrUnknownAirfoil = errors.New("wing: airfoil not in database")

	// ErrParameterBounds indicates a case parameter outside its valid range.
	ErrParameterBounds = errors.New("wing: parameter out of valid bounds")
)

// Airfoils is the catalog of sections the solver's geometry database
// resolves by name.
var Airfoils = []string{"naca8304", "goe225", "naca2412", "naca0012"}

// KnownAirfoil reports whether name is in the catalog.
func KnownAirfoil(name string) bool {
	return slices.Contains(Airfoils, name)
}

// Fixed wing discretization and tip kinematics shared by every case.
const (
	ChordwisePanels = 8
	SpanwisePanels  = 16
	PointsPerSide   = 400

	SweepAmplitudeDeg = 30.0
	SweepSpacing      = "sine"
)

// Case is one simulation configuration: the design and flight parameters
// that vary between runs. Immutable once handed to the solver.
type Case struct {
	Airfoil        string  `json:"airfoil" yaml:"airfoil"`
	Wingspan       float64 `json:"wingspan" yaml:"wingspan"`
	AspectRatio    float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
	TaperRatio     float64 `json:"taper_ratio" yaml:"taper_ratio"`
	FlappingPeriod float64 `json:"flapping_period" yaml:"flapping_period"`
	AirSpeed       float64 `json:"air_speed" yaml:"air_speed"`
	AngleOfAttack  float64 `json:"angle_of_attack" yaml:"angle_of_attack"`
}

// Validate checks the case before it reaches the solver. Unknown airfoils
// are rejected here so they never cost a solver invocation.
func (c Case) Validate() error {
	if !KnownAirfoil(c.Airfoil) {
		return fmt.Errorf("%w: %q", ErrUnknownAirfoil, c.Airfoil)
	}
	if c.Wingspan <= 0 {
		return fmt.Errorf("%w: wingspan %v", ErrParameterBounds, c.Wingspan)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect_ratio %v", ErrParameterBounds, c.AspectRatio)
	}
	if c.TaperRatio <= 0 {
		return fmt.Errorf("%w: taper_ratio %v", ErrParameterBounds, c.TaperRatio)
	}
	if c.FlappingPeriod <= 0 {
		return fmt.Errorf("%w: flapping_period %v", ErrParameterBounds, c.FlappingPeriod)
	}
	if c.AirSpeed <= 0 {
		return fmt.Errorf("%w: air_speed %v", ErrParameterBounds, c.AirSpeed)
	}
	return nil
}

// Geometry is the chord distribution derived from a case. Chords are
// rounded to the millimeter, matching the resolution the solver meshes at.
type Geometry struct {
	RootChord float64 `json:"root_chord"`
	TipChord  float64 `json:"tip_chord"`
}

// Geometry derives the root and tip chords from span, aspect ratio and
// taper ratio.
func (c Case) Geometry() Geometry {
	root := round3(c.Wingspan / c.AspectRatio)
	return Geometry{
		RootChord: root,
		TipChord:  round3(c.TaperRatio * root),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Spec is the complete solver input for one run: the case, its derived
// geometry, and the fixed discretization and tip-sweep kinematics.
type Spec struct {
	Case
	Geometry

	ChordwisePanels   int     `json:"chordwise_panels"`
	SpanwisePanels    int     `json:"spanwise_panels"`
	PointsPerSide     int     `json:"points_per_side"`
	SweepAmplitudeDeg float64 `json:"sweep_amplitude_deg"`
	SweepSpacing      string  `json:"sweep_spacing"`
	PrescribedWake    bool    `json:"prescribed_wake"`
}

// Spec assembles the solver input for the case. The tip section sweeps
// sinusoidally with the case's flapping period; the root section is fixed.
func (c Case) Spec(prescribedWake bool) Spec {
	return Spec{
		Case:              c,
		Geometry:          c.Geometry(),
		ChordwisePanels:   ChordwisePanels,
		SpanwisePanels:    SpanwisePanels,
		PointsPerSide:     PointsPerSide,
		SweepAmplitudeDeg: SweepAmplitudeDeg,
		SweepSpacing:      SweepSpacing,
		PrescribedWake:    prescribedWake,
	}
}
