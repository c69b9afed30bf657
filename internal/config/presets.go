package config

import (
	"slices"

	"github.com/ornilab/flapsweep/internal/sweep"
	"github.com/ornilab/flapsweep/internal/wing"
)

// Presets are named parameter grids kept from past collection batches.
var Presets = map[string]sweep.Axes{
	"mark4": {
		Airfoils:        wing.Airfoils,
		Wingspans:       []float64{0.4, 0.8, 1.2, 1.6},
		AspectRatios:    []float64{1.5, 2.5, 3.5, 4.5, 5.5},
		TaperRatios:     []float64{0.2, 0.4, 0.6, 0.8},
		FlappingPeriods: []float64{0.2, 0.4, 0.6, 0.8, 1.0, 1.2},
		AirSpeeds:       []float64{2, 3, 4, 5, 6},
		AnglesOfAttack:  []float64{5, 15, 25, 35},
	},
	"batch5": {
		Airfoils:        wing.Airfoils,
		Wingspans:       []float64{1.2, 1.4, 1.6},
		AspectRatios:    []float64{1.5, 2, 2.5},
		TaperRatios:     []float64{0.4, 0.5, 0.6, 0.8},
		FlappingPeriods: []float64{0.2, 0.3, 0.4},
		AirSpeeds:       []float64{3, 4, 5},
		AnglesOfAttack:  []float64{15, 20, 25},
	},
	"naca2412": {
		Airfoils:        []string{"naca2412"},
		Wingspans:       []float64{0.4},
		AspectRatios:    []float64{1.25, 1.9, 3},
		TaperRatios:     []float64{0.3, 0.4},
		FlappingPeriods: []float64{0.65, 0.75, 0.85},
		AirSpeeds:       []float64{3, 4, 5},
		AnglesOfAttack:  []float64{10, 20, 30},
	},
	// baseline pairs with the one-factor-at-a-time sweep.
	"baseline": {
		Airfoils:        wing.Airfoils,
		Wingspans:       []float64{0.55, 0.65, 0.75, 0.9, 1.1, 1.3},
		AspectRatios:    []float64{1.6, 1.8, 2.1, 2.3, 2.4},
		TaperRatios:     []float64{0.3, 0.6, 0.7, 0.8},
		FlappingPeriods: []float64{0.3, 0.5, 0.7, 0.9, 1.1},
		AirSpeeds:       []float64{2, 3.5, 4.5, 5.5, 6.5},
		AnglesOfAttack:  []float64{5, 10, 20, 30, 40},
	},
}

// GetPreset returns the named grid, or nil when the name is unknown.
func GetPreset(name string) *sweep.Axes {
	axes, ok := Presets[name]
	if !ok {
		return nil
	}
	return &axes
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultAxes is the grid used when no config file or preset is given. It
// matches the most recent collection batch.
func DefaultAxes() sweep.Axes {
	return Presets["naca2412"]
}
