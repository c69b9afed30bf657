package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/ornilab/flapsweep/internal/collect"
	"github.com/ornilab/flapsweep/internal/config"
	"github.com/ornilab/flapsweep/internal/logging"
	"github.com/ornilab/flapsweep/internal/solver"
	"github.com/ornilab/flapsweep/internal/sweep"
	"github.com/ornilab/flapsweep/internal/table"
	"github.com/ornilab/flapsweep/internal/viz"
	"github.com/ornilab/flapsweep/internal/wing"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFile    string
	output     string
	preset     string
	solverCmd  string
	timeout    time.Duration
	prescribed bool
	// Sampling parameters
	samples   int
	seed      int64
	liftFloor float64
	// Single case parameters
	airfoil  string
	wingspan float64
	aspect   float64
	taper    float64
	period   float64
	airSpeed float64
	alpha    float64
	// Run output options
	showPlot  bool
	seriesOut string
	// Stack options
	stackDir    string
	stackPrefix string
	// Plot options
	plotOut   string
	plotTitle string
)

// main is the entry point for the flapsweep CLI; it registers commands and
// flags and runs the configured grid collection when no subcommand is given.
// It exits the process with status 1 if command execution returns an error.
func main() {
	// .env feeds the FLAPSWEEP_* overrides; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "flapsweep",
		Short: "flapping wing aerodynamic data collection",
		RunE:  runCollect,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (info|debug|trace)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file as well as stderr")

	rootCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "results csv path")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use a named sweep grid")
	rootCmd.Flags().StringVar(&solverCmd, "solver", config.DefaultSolverCommand, "solver command")
	rootCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultSolverTimeout, "per-case solver timeout")
	rootCmd.Flags().BoolVar(&prescribed, "prescribed-wake", true, "use the prescribed wake model")

	collectCmd := &cobra.Command{
		Use:   "collect",
		Short: "run the configured sweep grid",
		RunE:  runCollect,
	}
	collectCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "results csv path")
	collectCmd.Flags().StringVar(&preset, "preset", "", "use a named sweep grid")
	collectCmd.Flags().StringVar(&solverCmd, "solver", config.DefaultSolverCommand, "solver command")
	collectCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultSolverTimeout, "per-case solver timeout")
	collectCmd.Flags().BoolVar(&prescribed, "prescribed-wake", true, "use the prescribed wake model")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "run a latin hypercube sweep, recording per-case status",
		RunE:  runSample,
	}
	sampleCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "results csv path")
	sampleCmd.Flags().StringVar(&solverCmd, "solver", config.DefaultSolverCommand, "solver command")
	sampleCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultSolverTimeout, "per-case solver timeout")
	sampleCmd.Flags().BoolVar(&prescribed, "prescribed-wake", true, "use the prescribed wake model")
	sampleCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "samples per airfoil")
	sampleCmd.Flags().Int64Var(&seed, "seed", 0, "sampling seed (0 uses the clock)")
	sampleCmd.Flags().Float64Var(&liftFloor, "lift-floor", config.DefaultLiftFloor, "skip cases with average lift below this")

	baselineCmd := &cobra.Command{
		Use:   "baseline",
		Short: "sweep one parameter group at a time around the baseline wing",
		RunE:  runBaseline,
	}
	baselineCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "results csv path")
	baselineCmd.Flags().StringVar(&preset, "preset", "", "use a named sweep grid")
	baselineCmd.Flags().StringVar(&solverCmd, "solver", config.DefaultSolverCommand, "solver command")
	baselineCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultSolverTimeout, "per-case solver timeout")
	baselineCmd.Flags().BoolVar(&prescribed, "prescribed-wake", true, "use the prescribed wake model")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a single case and print the averages",
		RunE:  runOne,
	}
	runCmd.Flags().StringVar(&airfoil, "airfoil", sweep.BaselineAirfoil, "airfoil name")
	runCmd.Flags().Float64Var(&wingspan, "wingspan", sweep.BaselineWingspan, "wingspan (m)")
	runCmd.Flags().Float64Var(&aspect, "aspect-ratio", sweep.BaselineAspectRatio, "aspect ratio")
	runCmd.Flags().Float64Var(&taper, "taper-ratio", sweep.BaselineTaperRatio, "taper ratio")
	runCmd.Flags().Float64Var(&period, "period", sweep.BaselineFlappingPeriod, "flapping period (s)")
	runCmd.Flags().Float64Var(&airSpeed, "air-speed", sweep.BaselineAirSpeed, "air speed (m/s)")
	runCmd.Flags().Float64Var(&alpha, "aoa", sweep.BaselineAngleOfAttack, "angle of attack (deg)")
	runCmd.Flags().StringVar(&solverCmd, "solver", config.DefaultSolverCommand, "solver command")
	runCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultSolverTimeout, "per-case solver timeout")
	runCmd.Flags().BoolVar(&prescribed, "prescribed-wake", true, "use the prescribed wake model")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "print ascii charts of the force series")
	runCmd.Flags().StringVar(&seriesOut, "series-out", "", "write the raw force series to this csv")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "run the sweep grid with a live dashboard",
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "results csv path")
	watchCmd.Flags().StringVar(&preset, "preset", "", "use a named sweep grid")
	watchCmd.Flags().StringVar(&solverCmd, "solver", config.DefaultSolverCommand, "solver command")
	watchCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultSolverTimeout, "per-case solver timeout")
	watchCmd.Flags().BoolVar(&prescribed, "prescribed-wake", true, "use the prescribed wake model")

	stackCmd := &cobra.Command{
		Use:   "stack",
		Short: "merge numbered result shards into one csv",
		RunE:  runStack,
	}
	stackCmd.Flags().StringVar(&stackDir, "dir", ".", "directory holding the shards")
	stackCmd.Flags().StringVar(&stackPrefix, "prefix", "", "shard name prefix (defaults to the output base name)")
	stackCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "merged csv path")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "probe the solver and report its version",
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVar(&solverCmd, "solver", config.DefaultSolverCommand, "solver command")
	checkCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultSolverTimeout, "per-case solver timeout")

	gridsCmd := &cobra.Command{
		Use:   "grids",
		Short: "list the named sweep grids",
		RunE:  runGrids,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [series_csv]",
		Short: "render a force series csv to a png",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&plotOut, "out", "", "output image path (defaults to the csv name with .png)")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "plot title (defaults to the csv name)")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a config file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}

	rootCmd.AddCommand(collectCmd, sampleCmd, baselineCmd, runCmd, watchCmd, stackCmd, checkCmd, gridsCmd, plotCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration: file values over defaults,
// environment overrides, then any flags changed on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("solver") {
		cfg.Solver.Command = solverCmd
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Solver.Timeout = timeout
	}
	if cmd.Flags().Changed("prescribed-wake") {
		cfg.Solver.PrescribedWake = prescribed
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Logging.File = logFile
	}
	if cmd.Flags().Changed("samples") {
		cfg.Sampling.Samples = samples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Sampling.Seed = seed
	}
	if cmd.Flags().Changed("lift-floor") {
		cfg.Sampling.LiftFloor = liftFloor
	}

	if preset != "" {
		axes := config.GetPreset(preset)
		if axes == nil {
			return nil, fmt.Errorf("unknown grid: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Sweep = *axes
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.Logging.File != "" {
		return logging.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
	}
	return logging.New(cfg.Logging.Level, os.Stderr), func() error { return nil }, nil
}

func newCollector(cfg *config.Config, logger *slog.Logger) *collect.Collector {
	return collect.New(collect.Config{
		Solver: solver.NewExec(solver.ExecConfig{
			Command: cfg.Solver.Command,
			Timeout: cfg.Solver.Timeout,
		}),
		Logger:         logger,
		PrescribedWake: cfg.Solver.PrescribedWake,
		LiftFloor:      cfg.Sampling.LiftFloor,
	})
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cases := cfg.Sweep.Cases()
	if len(cases) == 0 {
		return fmt.Errorf("sweep grid is empty")
	}

	c := newCollector(cfg, logger)
	start := time.Now()
	if err := c.Run(context.Background(), cases, cfg.Output); err != nil {
		return err
	}

	fmt.Printf("completed %d cases in %v\n", len(cases), time.Since(start).Round(time.Millisecond))
	fmt.Printf("results: %s\n", cfg.Output)
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	src := sweep.Source(cfg.Sampling.Seed)
	cases := cfg.Sampling.Space.Sample(cfg.Sweep.Airfoils, cfg.Sampling.Samples, src)
	if len(cases) == 0 {
		return fmt.Errorf("nothing to sample: no airfoils configured")
	}
	errOutput := config.ErrorPath(cfg.Output)

	c := newCollector(cfg, logger)
	start := time.Now()
	tally, err := c.Sample(context.Background(), cases, cfg.Output, errOutput)
	if err != nil {
		return err
	}

	fmt.Printf("completed %d cases in %v\n", tally.Total(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("  ok:      %d\n", tally.OK)
	fmt.Printf("  skipped: %d\n", tally.Skipped)
	fmt.Printf("  errors:  %d\n", tally.Errors)
	fmt.Printf("results: %s\n", cfg.Output)
	if tally.Errors > 0 {
		fmt.Printf("errors:  %s\n", errOutput)
	}
	return nil
}

func runBaseline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cases := sweep.BaselineCases(cfg.Sweep)
	if len(cases) == 0 {
		return fmt.Errorf("sweep grid is empty")
	}

	c := newCollector(cfg, logger)
	start := time.Now()
	if err := c.Run(context.Background(), cases, cfg.Output); err != nil {
		return err
	}

	fmt.Printf("completed %d cases in %v\n", len(cases), time.Since(start).Round(time.Millisecond))
	fmt.Printf("results: %s\n", cfg.Output)
	return nil
}

func runOne(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	wc := wing.Case{
		Airfoil:        airfoil,
		Wingspan:       wingspan,
		AspectRatio:    aspect,
		TaperRatio:     taper,
		FlappingPeriod: period,
		AirSpeed:       airSpeed,
		AngleOfAttack:  alpha,
	}

	ctx := context.Background()
	c := newCollector(cfg, logger)
	if err := c.Probe(ctx); err != nil {
		return err
	}

	rec, series, err := c.RunOne(ctx, wc)
	if err != nil {
		return err
	}

	fmt.Printf("airfoil: %s\n", wc.Airfoil)
	fmt.Printf("steps: %d\n", series.Len())
	fmt.Printf("average lift: %.6f N\n", rec.AverageLift)
	fmt.Printf("average induced drag: %.6f N\n", rec.AverageInducedDrag)

	if seriesOut != "" {
		if err := table.WriteSeries(seriesOut, series); err != nil {
			return err
		}
		fmt.Printf("series: %s\n", seriesOut)
	}
	if showPlot {
		fmt.Println()
		fmt.Println(viz.SeriesChart(series, 80))
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cases := cfg.Sweep.Cases()
	if len(cases) == 0 {
		return fmt.Errorf("sweep grid is empty")
	}

	// The dashboard owns the terminal, so per-case logging is dropped.
	ctx := context.Background()
	c := newCollector(cfg, logging.Discard())
	if err := c.Probe(ctx); err != nil {
		return err
	}
	w, err := table.NewWriter(cfg.Output, table.ResultColumns)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(ctx, c, w, cases))
	final, err := p.Run()
	if err != nil {
		return err
	}

	m := final.(viz.Model)
	if m.Err() != nil {
		return m.Err()
	}
	fmt.Printf("completed %d/%d cases\n", m.Completed(), len(cases))
	fmt.Printf("results: %s\n", cfg.Output)
	return nil
}

func runStack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	prefix := stackPrefix
	if prefix == "" {
		base := filepath.Base(cfg.Output)
		prefix = strings.TrimSuffix(base, filepath.Ext(base))
	}

	rows, shards, err := table.Stack(stackDir, prefix, cfg.Output)
	if err != nil {
		return err
	}

	fmt.Printf("stacked %d rows from %d shards\n", rows, shards)
	fmt.Printf("results: %s\n", cfg.Output)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ex := solver.NewExec(solver.ExecConfig{
		Command: cfg.Solver.Command,
		Timeout: cfg.Solver.Timeout,
	})

	ctx := context.Background()
	if err := ex.Probe(ctx); err != nil {
		return err
	}
	version, err := ex.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("solver: %s\n", ex.Path())
	fmt.Printf("version: %s\n", version)
	return nil
}

func runGrids(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCASES\tAIRFOILS")

	for _, name := range config.ListPresets() {
		axes := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, axes.Len(), strings.Join(axes.Airfoils, ","))
	}

	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	seriesPath := args[0]

	series, err := table.ReadSeries(seriesPath)
	if err != nil {
		return err
	}

	out := plotOut
	if out == "" {
		out = strings.TrimSuffix(seriesPath, filepath.Ext(seriesPath)) + ".png"
	}
	title := plotTitle
	if title == "" {
		title = filepath.Base(seriesPath)
	}

	if err := viz.SavePNG(series, title, out); err != nil {
		return err
	}
	fmt.Printf("plot: %s\n", out)
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "flapsweep.yaml"
	if len(args) > 0 {
		path = args[0]
	} else if configFile != "" {
		path = configFile
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("config: %s\n", path)
	return nil
}
