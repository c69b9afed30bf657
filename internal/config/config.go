package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ornilab/flapsweep/internal/sweep"
)

const (
	DefaultSolverCommand = "ptera-solver"
	DefaultSolverTimeout = 10 * time.Minute
	DefaultOutput        = "AverageFlightData.csv"
	DefaultSamples       = 20
	DefaultLiftFloor     = -100.0
)

type Config struct {
	Solver   SolverConfig   `yaml:"solver"`
	Output   string         `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Sweep    sweep.Axes     `yaml:"sweep"`
	Sampling SamplingConfig `yaml:"sampling"`
}

type SolverConfig struct {
	// Command is the solver executable, resolved on PATH before a run.
	Command string `yaml:"command"`
	// Timeout bounds a single solver case.
	Timeout time.Duration `yaml:"timeout"`
	// PrescribedWake selects the cheaper fixed-geometry wake model.
	PrescribedWake bool `yaml:"prescribed_wake"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type SamplingConfig struct {
	Samples   int         `yaml:"samples"`
	Seed      int64       `yaml:"seed"`
	LiftFloor float64     `yaml:"lift_floor"`
	Space     sweep.Space `yaml:"space"`
}

func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Command:        DefaultSolverCommand,
			Timeout:        DefaultSolverTimeout,
			PrescribedWake: true,
		},
		Output:  DefaultOutput,
		Logging: LoggingConfig{Level: "info"},
		Sweep:   DefaultAxes(),
		Sampling: SamplingConfig{
			Samples:   DefaultSamples,
			LiftFloor: DefaultLiftFloor,
			Space:     sweep.DefaultSpace(),
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path when path is non-empty, then FLAPSWEEP_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the scalar settings. Grid axes are validated per case at
// run time.
func (c *Config) Validate() error {
	if c.Solver.Command == "" {
		return fmt.Errorf("solver command must not be empty")
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("solver timeout must be non-negative, got %v", c.Solver.Timeout)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Sampling.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, got %d", c.Sampling.Samples)
	}
	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// ErrorPath derives the rejected-case table path from an output path:
// "Data/AverageFlightData.csv" becomes "Data/AverageFlightData_errors.csv".
func ErrorPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_errors" + ext
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FLAPSWEEP_SOLVER"); v != "" {
		cfg.Solver.Command = v
	}
	if v := os.Getenv("FLAPSWEEP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Solver.Timeout = d
		}
	}
	if v := os.Getenv("FLAPSWEEP_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("FLAPSWEEP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FLAPSWEEP_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("FLAPSWEEP_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sampling.Samples = n
		}
	}
	if v := os.Getenv("FLAPSWEEP_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Sampling.Seed = n
		}
	}
	if v := os.Getenv("FLAPSWEEP_LIFT_FLOOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Sampling.LiftFloor = f
		}
	}
}
