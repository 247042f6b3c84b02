package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/androclassic/quantum-particle-simulation/internal/analysis"
	"github.com/androclassic/quantum-particle-simulation/internal/config"
	"github.com/androclassic/quantum-particle-simulation/internal/eigen"
	"github.com/androclassic/quantum-particle-simulation/internal/engine"
	"github.com/androclassic/quantum-particle-simulation/internal/grid"
	"github.com/androclassic/quantum-particle-simulation/internal/quantum"
	"github.com/androclassic/quantum-particle-simulation/internal/storage"
)

var (
	dataDir    string
	configFile string
	preset     string
	integrator string
	dt         float64
	steps      int
	saveEvery  int
	mass       float64
	imagTime   bool
	// Grid
	xMin, xMax float64
	points     int
	// Packet
	center   float64
	width    float64
	momentum float64
	// Potential
	potType string
	omega   float64
	height  float64
	x0, x1  float64
	// Eigen
	eigenCount int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qsim",
		Short: "schrödinger wave packet simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a wave packet simulation",
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	eigenCmd := &cobra.Command{
		Use:   "eigen",
		Short: "extract eigenstates by imaginary-time evolution",
		RunE:  runEigen,
	}
	addScenarioFlags(eigenCmd)
	eigenCmd.Flags().IntVar(&eigenCount, "count", 4, "number of eigenstates")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, eigenCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler|rk4)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "time step magnitude")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "step count")
	cmd.Flags().IntVar(&saveEvery, "save-every", config.DefaultSaveEvery, "snapshot cadence (0 disables)")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "particle mass")
	cmd.Flags().BoolVar(&imagTime, "imag", false, "imaginary-time evolution")
	cmd.Flags().Float64Var(&xMin, "xmin", -10, "grid lower bound")
	cmd.Flags().Float64Var(&xMax, "xmax", 10, "grid upper bound")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	cmd.Flags().Float64Var(&center, "center", 0, "packet center")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "packet width")
	cmd.Flags().Float64Var(&momentum, "momentum", 0, "packet momentum")
	cmd.Flags().StringVar(&potType, "potential", "none", "potential (none|harmonic|barrier|well|double_well)")
	cmd.Flags().Float64Var(&omega, "omega", 1.0, "harmonic frequency")
	cmd.Flags().Float64Var(&height, "height", 1.0, "barrier height / well depth")
	cmd.Flags().Float64Var(&x0, "x0", 0, "potential region start")
	cmd.Flags().Float64Var(&x1, "x1", 1, "potential region end")
}

// buildConfig resolves preset, config file, and flags in that order.
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

	flags := cmd.Flags()
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("save-every") {
		cfg.SaveEvery = saveEvery
	}
	if flags.Changed("mass") {
		cfg.Mass = mass
	}
	if flags.Changed("imag") {
		cfg.ImaginaryTime = imagTime
	}
	if flags.Changed("xmin") {
		cfg.Grid.XMin = xMin
	}
	if flags.Changed("xmax") {
		cfg.Grid.XMax = xMax
	}
	if flags.Changed("points") {
		cfg.Grid.NX = points
	}
	if flags.Changed("center") {
		cfg.Packet.Center = center
	}
	if flags.Changed("width") {
		cfg.Packet.Width = width
	}
	if flags.Changed("momentum") {
		cfg.Packet.Momentum = momentum
	}
	if flags.Changed("potential") {
		cfg.Potential.Type = potType
	}
	if flags.Changed("omega") {
		cfg.Potential.Omega = omega
	}
	if flags.Changed("height") {
		cfg.Potential.Height = height
		cfg.Potential.Depth = height
	}
	if flags.Changed("x0") {
		cfg.Potential.X0 = x0
	}
	if flags.Changed("x1") {
		cfg.Potential.X1 = x1
	}

	return cfg, nil
}

func buildScenario(cfg *config.Config) (grid.Grid, quantum.Potential, quantum.Wavefunction, error) {
	g, err := cfg.BuildGrid()
	if err != nil {
		return nil, nil, nil, err
	}
	v, err := cfg.BuildPotential(g)
	if err != nil {
		return nil, nil, nil, err
	}
	psi0, err := cfg.BuildPacket(g)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, v, psi0, nil
}

func metadataFor(cfg *config.Config, g grid.Grid) storage.RunMetadata {
	meta := storage.RunMetadata{
		Scenario:      cfg.Scenario,
		Integrator:    cfg.Integrator,
		Dt:            cfg.Dt,
		ImaginaryTime: cfg.ImaginaryTime,
		Steps:         cfg.Steps,
		GridDim:       g.Dim(),
		Cells:         g.Size(),
		CellVolume:    g.CellVolume(),
	}
	switch t := g.(type) {
	case *grid.Grid1D:
		xs := t.Points()
		meta.Extent = []float64{xs[0], xs[len(xs)-1]}
	case *grid.Grid2D:
		e := t.Extent()
		meta.Extent = e[:]
	}
	return meta
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	g, v, psi0, err := buildScenario(cfg)
	if err != nil {
		return err
	}

	eng, err := engine.New(g, v, cfg.EngineConfig())
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s (%d cells, %d steps)...\n", cfg.Scenario, g.Size(), cfg.Steps)
	start := time.Now()

	trace, err := eng.Run(psi0, nil)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(metadataFor(cfg, g), trace)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("snapshots: %d\n", len(trace.States))

	final := trace.Final()
	dv := g.CellVolume()
	fmt.Printf("final norm: %.8f\n", analysis.Norm(final, dv))
	if t, ok := g.(*grid.Grid1D); ok {
		fmt.Printf("final <x>: %.6f\n", analysis.MeanPosition(final, t.Points(), dv))
		fmt.Printf("final var(x): %.6f\n", analysis.Variance(final, t.Points(), dv))
	}
	fmt.Printf("final <H>: %.6f\n", analysis.Energy(g, v, final, cfg.Mass))

	return nil
}

func runEigen(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("count") {
		cfg.Eigen.Count = eigenCount
	}
	cfg.ImaginaryTime = true

	g, v, _, err := buildScenario(cfg)
	if err != nil {
		return err
	}

	ext, err := eigen.New(g, v, cfg.EngineConfig())
	if err != nil {
		return err
	}

	trial := func(k int) quantum.Wavefunction {
		psi, _ := cfg.BuildPacket(g)
		return psi
	}

	fmt.Printf("extracting %d eigenstates (%d imaginary-time steps each)...\n", cfg.Eigen.Count, cfg.Steps)
	start := time.Now()

	states, err := ext.Spectrum(trial, cfg.Eigen.Count)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	dv := g.CellVolume()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tENERGY\tNORM\tMAX OVERLAP")
	for k, s := range states {
		maxOverlap := 0.0
		for j := 0; j < k; j++ {
			if ov := analysis.Overlap(states[j], s, dv); ov > maxOverlap {
				maxOverlap = ov
			}
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.8f\t%.2e\n",
			k, analysis.Energy(g, v, s, cfg.Mass), analysis.Norm(s, dv), maxOverlap)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDT\tSTEPS\tINTEG\tMODE\tSNAPSHOTS")
	for _, run := range runs {
		mode := "real"
		if run.ImaginaryTime {
			mode = "imag"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%d\t%s\t%s\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Steps,
			run.Integrator,
			mode,
			run.Snapshots,
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

	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace.States) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("snapshots: %d\n\n", len(trace.States))

	if meta.GridDim == 1 {
		graph := asciigraph.Plot(trace.States[0].Density(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("|psi|^2 initial"),
		)
		fmt.Println(graph)
		fmt.Println()

		graph = asciigraph.Plot(trace.Final().Density(),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("|psi|^2 final"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	norms := make([]float64, len(trace.States))
	for i, s := range trace.States {
		norms[i] = analysis.Norm(s, meta.CellVolume)
	}
	graph := asciigraph.Plot(norms,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("norm vs snapshot"),
	)
	fmt.Println(graph)

	if meta.GridDim == 1 && len(meta.Extent) == 2 && meta.Cells > 1 {
		xs := make([]float64, meta.Cells)
		floats.Span(xs, meta.Extent[0], meta.Extent[1])
		vars := make([]float64, len(trace.States))
		for i, s := range trace.States {
			vars[i] = analysis.Variance(s, xs, meta.CellVolume)
		}
		fmt.Println()
		graph = asciigraph.Plot(vars,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("var(x) vs snapshot"),
		)
		fmt.Println(graph)
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
