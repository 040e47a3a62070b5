package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bodysim/internal/config"
	"github.com/san-kum/bodysim/internal/experiment"
	"github.com/san-kum/bodysim/internal/export"
	"github.com/san-kum/bodysim/internal/storage"
	"github.com/san-kum/bodysim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	mass       float64
	friction   float64
	height     float64
	kinematic  bool
	noGravity  bool
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bodysim",
		Short: "rigid body drop-test lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bodysim", "data directory")

	dropCmd := &cobra.Command{
		Use:   "drop",
		Short: "run a drop test and record the trajectory",
		RunE:  runDrop,
	}
	addScenarioFlags(dropCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a drop test with live visualization",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trajectory as an SVG plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMASS\tSHAPE\tKINEMATIC")
			for _, name := range config.ListPresets() {
				cfg := config.Presets[name]
				fmt.Fprintf(w, "%s\t%.2f\t%s\t%v\n",
					name, cfg.Body.Mass, cfg.Shape.Type, cfg.Body.Kinematic)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(dropCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&mass, "mass", 1.0, "body mass")
	cmd.Flags().Float64Var(&friction, "friction", 0.5, "friction coefficient")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "drop height")
	cmd.Flags().BoolVar(&kinematic, "kinematic", false, "kinematic body")
	cmd.Flags().BoolVar(&noGravity, "no-gravity", false, "disable gravity on the body")
}

// buildConfig resolves a scenario from preset, config file, and flags,
// in increasing precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("mass") {
		cfg.Body.Mass = mass
	}
	if cmd.Flags().Changed("friction") {
		cfg.Body.Friction = friction
	}
	if cmd.Flags().Changed("height") {
		cfg.Body.Height = height
	}
	if cmd.Flags().Changed("kinematic") {
		cfg.Body.Kinematic = kinematic
	}
	if cmd.Flags().Changed("no-gravity") {
		cfg.Body.UseGravity = !noGravity
	}

	return cfg, nil
}

func scenarioName() string {
	if preset != "" {
		return preset
	}
	return "drop"
}

func runDrop(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("dropping %s body from %.2fm...\n", cfg.Shape.Type, cfg.Body.Height)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	runID, err := st.Save(scenarioName(), cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Samples))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg, scenarioName(), frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(samples))

	heights := make([]float64, len(samples))
	speeds := make([]float64, len(samples))
	for i, s := range samples {
		heights[i] = s.Position[1]
		speeds[i] = s.Velocity.Len()
	}

	fmt.Println(asciigraph.Plot(heights,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("height vs time"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(speeds,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("speed vs time"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	svg := export.TrajectorySVG(samples, 800, 400)
	if svg == "" {
		return fmt.Errorf("not enough samples to plot")
	}
	fmt.Println(svg)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	fmt.Println("time,px,py,pz,vx,vy,vz,active")
	for _, s := range samples {
		fmt.Printf("%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%v\n",
			s.Time,
			s.Position[0], s.Position[1], s.Position[2],
			s.Velocity[0], s.Velocity[1], s.Velocity[2],
			s.Active,
		)
	}
	return nil
}
