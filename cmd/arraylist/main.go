package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/san-kum/arraylist/internal/arraylist"
	"github.com/san-kum/arraylist/internal/bench"
	"github.com/san-kum/arraylist/internal/config"
	"github.com/san-kum/arraylist/internal/export"
	"github.com/san-kum/arraylist/internal/metrics"
	"github.com/san-kum/arraylist/internal/scenario"
	"github.com/san-kum/arraylist/internal/storage"
	"github.com/san-kum/arraylist/internal/tui"
	"github.com/san-kum/arraylist/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	capacity   int
	noSave     bool
	outPath    string
	sizes      []int
	repeats    int
	growthN    int
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	dimText   = color.New(color.Faint).SprintFunc()
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "arraylist",
		Short:        "dynamic array playground",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", config.DefaultCapacity, "initial capacity")

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml|name]",
		Short: "run a scenario against a fresh list",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in scenarios",
		RunE:  listScenarios,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark appends and growth cost",
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", config.DefaultBenchSizes, "element counts")
	benchCmd.Flags().IntVar(&repeats, "repeats", config.DefaultRepeats, "repeats per size")

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "print the capacity sequence for n appends",
		RunE:  showGrowth,
	}
	growthCmd.Flags().IntVar(&growthN, "n", config.DefaultGrowthN, "number of appends")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCAPACITY\tBENCH SIZES\tREPEATS\tGROWTH N")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%v\t%d\t%d\n", name, p.Capacity, p.Bench.Sizes, p.Bench.Repeats, p.Growth.N)
			}
			return w.Flush()
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [values...]",
		Short: "interactive list explorer",
		RunE:  runTUI,
	}

	rootCmd.AddCommand(runCmd, scenariosCmd, listCmd, showCmd, exportJSONCmd, benchCmd, growthCmd, presetsCmd, tuiCmd)
	return rootCmd
}

// loadConfig layers defaults, the preset, the config file and explicitly set
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Lookup("sizes") != nil && flags.Changed("sizes") {
		cfg.Bench.Sizes = sizes
	}
	if flags.Lookup("repeats") != nil && flags.Changed("repeats") {
		cfg.Bench.Repeats = repeats
	}
	if flags.Lookup("n") != nil && flags.Changed("n") {
		cfg.Growth.N = growthN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveScenario(arg string) (*scenario.Scenario, error) {
	if _, err := os.Stat(arg); err == nil {
		return scenario.Load(arg)
	}
	return scenario.Builtin(arg)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := cfg.Scenario
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return fmt.Errorf("no scenario given (built-in: %s)", strings.Join(scenario.BuiltinNames(), ", "))
	}

	sc, err := resolveScenario(name)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("capacity") {
		c := cfg.Capacity
		sc.Capacity = &c
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running scenario %s (capacity %d)\n\n", sc.Name, sc.InitialCapacity())
	res, err := scenario.NewRunner().Run(ctx, sc)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tRESULT\tOP\tARG\tVALUE\tOUTPUT\tSIZE\tCAP\t")
	for _, step := range res.Steps {
		label := passLabel("PASS")
		if !step.Passed {
			label = failLabel("FAIL")
		}
		out := step.Output
		if step.Error != "" {
			out = step.Error
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%d\t%d\t%s\n",
			step.Index, label, step.Op, step.Arg, step.Value, out, step.Size, step.Capacity, dimText(step.Message))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nfinal: %v\n", res.Final)
	fmt.Printf("passed: %d  failed: %d\n", res.Passed, res.Failed)
	fmt.Printf("capacity: %s\n", viz.GrowthSequence(res.CapacityHistory))

	if !noSave {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if !res.OK() {
		return fmt.Errorf("scenario %s: %d step(s) failed", sc.Name, res.Failed)
	}
	return nil
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tOPS\tDESCRIPTION")
	for _, name := range scenario.BuiltinNames() {
		sc, err := scenario.Builtin(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", sc.Name, len(sc.Ops), sc.Description)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tCAP\tSTEPS\tPASSED\tFAILED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Capacity,
			run.Steps,
			run.Passed,
			run.Failed,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("time: %s\n", meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("passed: %d  failed: %d\n", meta.Passed, meta.Failed)
	fmt.Printf("final: %v\n\n", meta.Final)

	series := make([]float64, len(steps))
	for i, s := range steps {
		series[i] = float64(s.Size)
	}
	fmt.Println(viz.SeriesChart(series, "size per step", 60, 8))
	fmt.Println()
	fmt.Println(viz.CapacityChart(meta.CapacityHistory, 60, 8))

	fmt.Println("\nmetrics:")
	for name, val := range meta.Metrics {
		fmt.Printf("  %s: %g\n", name, val)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if outPath == "" {
		return export.WriteJSON(os.Stdout, meta, steps)
	}
	if err := export.ExportJSON(outPath, meta, steps); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", meta.ID, outPath)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("benchmarking appends (capacity %d, %d repeats)\n\n", cfg.Capacity, cfg.Bench.Repeats)
	results, err := bench.Run(ctx, bench.Config{
		Capacity: cfg.Capacity,
		Sizes:    cfg.Bench.Sizes,
		Repeats:  cfg.Bench.Repeats,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tTIME\tNS/OP\tGROWS\tCOPIES\tCOPIES/OP\tCAP")
	costs := make([]float64, len(results))
	for i, m := range results {
		fmt.Fprintf(w, "%d\t%v\t%.2f\t%d\t%d\t%.3f\t%d\n",
			m.Size, m.Elapsed, m.NsPerOp, m.GrowthEvents, m.Copies, m.AmortizedCopies, m.FinalCapacity)
		costs[i] = m.AmortizedCopies
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(costs) > 1 {
		fmt.Println()
		fmt.Println(viz.SeriesChart(costs, "amortized copies per append", 60, 8))
	}
	return nil
}

func showGrowth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	initial := cfg.Capacity
	if initial == 0 {
		initial = arraylist.DefaultCapacity
	}
	caps := metrics.Capacities(initial, cfg.Growth.N)

	fmt.Printf("capacity for %d appends starting at %d:\n", cfg.Growth.N, initial)
	fmt.Println(viz.GrowthSequence(caps))
	fmt.Printf("growth events: %d\n\n", len(caps)-1)
	fmt.Println(viz.CapacityChart(caps, 60, 10))
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	list := arraylist.New[string]()
	if cfg.Capacity != 0 {
		list, err = arraylist.NewWithCapacity[string](cfg.Capacity)
		if err != nil {
			return err
		}
	}
	for _, v := range args {
		list.Add(v)
	}
	return tui.Run(list)
}
