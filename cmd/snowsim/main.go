package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/snowsim/internal/config"
	"github.com/san-kum/snowsim/internal/field"
	"github.com/san-kum/snowsim/internal/report"
	"github.com/san-kum/snowsim/internal/scan"
	"github.com/san-kum/snowsim/internal/sim"
	"github.com/san-kum/snowsim/internal/store"
	"github.com/san-kum/snowsim/internal/tui"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string

	density      float64
	temperature  float64
	fieldOnAxis  float64
	majorRadius  float64
	heatingPower float64
	wettedArea   float64
	divertorR    float64
	divertorZ    float64

	scanMin   float64
	scanMax   float64
	scanSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "snowsim",
		Short: "snowflake divertor scenario lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: runScenario,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".snowsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one scenario evaluation",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	addScenarioFlags(rootCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run result as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunCSV,
	}

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "plot field magnitude profiles",
		RunE:  plotField,
	}
	addScenarioFlags(fieldCmd)

	scanCmd := &cobra.Command{
		Use:   "scan [parameter]",
		Short: "sweep one parameter and plot the heat flux",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}
	addScenarioFlags(scanCmd)
	scanCmd.Flags().Float64Var(&scanMin, "min", 10.0, "sweep start")
	scanCmd.Flags().Float64Var(&scanMax, "max", 100.0, "sweep end")
	scanCmd.Flags().IntVar(&scanSteps, "steps", 40, "sweep steps")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive strike-point explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addScenarioFlags(exploreCmd)

	rootCmd.AddCommand(runCmd, listCmd, exportCmd, exportCSVCmd, fieldCmd, scanCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "scenario preset")
	cmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "electron density (m^-3)")
	cmd.Flags().Float64Var(&temperature, "temperature", config.DefaultTemperature, "electron temperature (keV)")
	cmd.Flags().Float64Var(&fieldOnAxis, "field", config.DefaultFieldOnAxis, "toroidal field on axis (T)")
	cmd.Flags().Float64Var(&majorRadius, "radius", config.DefaultMajorRadius, "major radius (m)")
	cmd.Flags().Float64Var(&heatingPower, "power", config.DefaultHeatingPower, "heating power (MW)")
	cmd.Flags().Float64Var(&wettedArea, "area", config.DefaultWettedArea, "wetted area (m^2)")
	cmd.Flags().Float64Var(&divertorR, "divertor-r", config.DefaultDivertorR, "divertor target R (m)")
	cmd.Flags().Float64Var(&divertorZ, "divertor-z", config.DefaultDivertorZ, "divertor target Z (m)")
}

// buildConfig layers preset, config file, then changed CLI flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("density") {
		cfg.Density = density
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Temperature = temperature
	}
	if cmd.Flags().Changed("field") {
		cfg.FieldOnAxis = fieldOnAxis
	}
	if cmd.Flags().Changed("radius") {
		cfg.MajorRadius = majorRadius
	}
	if cmd.Flags().Changed("power") {
		cfg.HeatingPower = heatingPower
	}
	if cmd.Flags().Changed("area") {
		cfg.WettedArea = wettedArea
	}
	if cmd.Flags().Changed("divertor-r") {
		cfg.Divertor.R = divertorR
	}
	if cmd.Flags().Changed("divertor-z") {
		cfg.Divertor.Z = divertorZ
	}

	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	res := sim.Run(cfg)
	log.WithFields(log.Fields{
		"field_total":    res.FieldTotal,
		"flux_expansion": res.FluxExpansion,
		"optical_depth":  res.OpticalDepth,
		"absorption":     res.ECRHEfficiency,
	}).Debug("evaluation complete")

	fmt.Print(report.Render(cfg, res))

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, preset, res)
	if err != nil {
		return err
	}
	log.WithField("run_id", runID).Debug("run saved")
	fmt.Printf("\nrun id: %s\n", runID)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tPRESET\tFINAL FLUX\tMARGIN\tVIABLE")

	for _, run := range runs {
		presetName := run.Preset
		if presetName == "" {
			presetName = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f MW/m^2\t%.2fx\t%v\n",
			run.ID,
			humanize.Time(run.Timestamp),
			presetName,
			run.Result.FinalHeatFlux,
			run.Result.SafetyMargin,
			run.Result.Viable,
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, err := store.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta)
}

func exportRunCSV(cmd *cobra.Command, args []string) error {
	meta, err := store.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	return store.ExportCSV(os.Stdout, meta)
}

func plotField(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	f := field.NewSnowflake(cfg.FieldOnAxis, cfg.MajorRadius)

	// Radial cut through the null region.
	const samples = 80
	zCut := -2.3
	radial := make([]float64, samples)
	for i := 0; i < samples; i++ {
		r := cfg.MajorRadius - 1.5 + 3.5*float64(i)/float64(samples-1)
		radial[i] = f.At(field.Point{R: r, Z: zCut}).Total
	}

	fmt.Println(asciigraph.Plot(radial,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("|B| across the null region (Z = %.1f)", zCut)),
	))
	fmt.Println()

	// Vertical cut along the divertor leg.
	vertical := make([]float64, samples)
	for i := 0; i < samples; i++ {
		z := -3.2 + 1.6*float64(i)/float64(samples-1)
		vertical[i] = f.At(field.Point{R: cfg.Divertor.R, Z: z}).Total
	}

	fmt.Println(asciigraph.Plot(vertical,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("|B| along the divertor leg (R = %.1f)", cfg.Divertor.R)),
	))

	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	sweep, err := scan.Run(cfg, args[0], scanMin, scanMax, scanSteps)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s from %g to %g (%d steps)\n\n", sweep.Param, scanMin, scanMax, scanSteps)

	fmt.Println(asciigraph.Plot(sweep.FinalHeatFlux(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("final heat flux (MW/m^2) vs %s", sweep.Param)),
	))
	fmt.Println()

	fmt.Println(asciigraph.Plot(sweep.Absorption(),
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("ECRH absorption vs %s", sweep.Param)),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tFINAL FLUX\tMARGIN\tVIABLE\n", strings.ToUpper(sweep.Param))
	for i, v := range sweep.Values {
		r := sweep.Results[i]
		fmt.Fprintf(w, "%g\t%.3f\t%.2fx\t%v\n", v, r.FinalHeatFlux, r.SafetyMargin, r.Viable)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if b := sweep.ViabilityBoundary(); b > 0 {
		fmt.Printf("\nviability boundary: %s between %g and %g\n", sweep.Param, sweep.Values[b-1], sweep.Values[b])
	} else if b == 0 {
		fmt.Println("\nno viable points in the sweep")
	} else {
		fmt.Println("\nall points viable")
	}

	return nil
}
