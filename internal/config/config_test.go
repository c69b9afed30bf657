package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Solver.Command != DefaultSolverCommand {
		t.Errorf("expected solver %s, got %s", DefaultSolverCommand, cfg.Solver.Command)
	}
	if cfg.Solver.Timeout <= 0 {
		t.Error("solver timeout should be positive")
	}
	if !cfg.Solver.PrescribedWake {
		t.Error("prescribed wake should default on")
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected output %s, got %s", DefaultOutput, cfg.Output)
	}
	if cfg.Sampling.Samples != DefaultSamples {
		t.Errorf("expected %d samples, got %d", DefaultSamples, cfg.Sampling.Samples)
	}
	if cfg.Sampling.LiftFloor != DefaultLiftFloor {
		t.Errorf("expected lift floor %v, got %v", DefaultLiftFloor, cfg.Sampling.LiftFloor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
solver:
  command: mock-solver
output: runs/out.csv
sweep:
  airfoils: [goe225]
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Solver.Command != "mock-solver" {
		t.Errorf("expected mock-solver, got %s", cfg.Solver.Command)
	}
	if cfg.Output != "runs/out.csv" {
		t.Errorf("expected runs/out.csv, got %s", cfg.Output)
	}
	if len(cfg.Sweep.Airfoils) != 1 || cfg.Sweep.Airfoils[0] != "goe225" {
		t.Errorf("sweep airfoils not overridden: %v", cfg.Sweep.Airfoils)
	}
	// keys absent from the file keep their defaults
	if cfg.Solver.Timeout != DefaultSolverTimeout {
		t.Errorf("timeout should keep default, got %v", cfg.Solver.Timeout)
	}
	if len(cfg.Sweep.AspectRatios) == 0 {
		t.Error("unset sweep axes should keep defaults")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FLAPSWEEP_SOLVER", "env-solver")
	t.Setenv("FLAPSWEEP_TIMEOUT", "90s")
	t.Setenv("FLAPSWEEP_SEED", "7")
	t.Setenv("FLAPSWEEP_LIFT_FLOOR", "-50")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Solver.Command != "env-solver" {
		t.Errorf("expected env-solver, got %s", cfg.Solver.Command)
	}
	if cfg.Solver.Timeout != 90*time.Second {
		t.Errorf("expected 90s timeout, got %v", cfg.Solver.Timeout)
	}
	if cfg.Sampling.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Sampling.Seed)
	}
	if cfg.Sampling.LiftFloor != -50 {
		t.Errorf("expected lift floor -50, got %v", cfg.Sampling.LiftFloor)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Sweep.Airfoils = []string{"naca0012"}
	cfg.Sampling.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Sampling.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Sampling.Seed)
	}
	if len(loaded.Sweep.Airfoils) != 1 || loaded.Sweep.Airfoils[0] != "naca0012" {
		t.Errorf("sweep airfoils did not round trip: %v", loaded.Sweep.Airfoils)
	}
	if loaded.Solver.Timeout != cfg.Solver.Timeout {
		t.Errorf("timeout did not round trip: %v", loaded.Solver.Timeout)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty solver command", func(c *Config) { c.Solver.Command = "" }},
		{"negative timeout", func(c *Config) { c.Solver.Timeout = -time.Second }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"zero samples", func(c *Config) { c.Sampling.Samples = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}
	for _, tt := range cases {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestGetPreset(t *testing.T) {
	axes := GetPreset("mark4")
	if axes == nil {
		t.Fatal("expected preset, got nil")
	}
	if axes.Len() != 38400 {
		t.Errorf("expected 38400 cases, got %d", axes.Len())
	}

	axes = GetPreset("naca2412")
	if axes == nil {
		t.Fatal("expected preset, got nil")
	}
	if axes.Len() != 162 {
		t.Errorf("expected 162 cases, got %d", axes.Len())
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	if !slices.IsSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}
	if !slices.Contains(names, "baseline") {
		t.Errorf("baseline preset missing: %v", names)
	}
}

func TestErrorPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"AverageFlightData.csv", "AverageFlightData_errors.csv"},
		{"Data/AverageFlightData10.csv", "Data/AverageFlightData10_errors.csv"},
		{"results", "results_errors"},
	}
	for _, tt := range tests {
		if got := ErrorPath(tt.in); got != tt.want {
			t.Errorf("ErrorPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
