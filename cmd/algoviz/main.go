package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/DanielRosa74/algo-visualizer/internal/algo"
	"github.com/DanielRosa74/algo-visualizer/internal/config"
	"github.com/DanielRosa74/algo-visualizer/internal/player"
	"github.com/DanielRosa74/algo-visualizer/internal/step"
	"github.com/DanielRosa74/algo-visualizer/internal/tui"
	"github.com/DanielRosa74/algo-visualizer/internal/ui"
)

var (
	valuesFlag string
	targetFlag string
	orderFlag  string
	delayMs    int
	trace      bool
	preset     string
	configFile string
	themeFlag  string
)

// main registers commands and flags, launching the interactive TUI when
// no subcommand is given. It exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "terminal algorithm visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive TUI mode when no command given
			cfg, err := baseConfig()
			if err != nil {
				return err
			}
			return tui.RunApp(algo.NewRegistry(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "color theme")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm headless and print its event summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&valuesFlag, "values", "", "comma-separated input (use _ for an empty tree slot)")
	runCmd.Flags().StringVar(&targetFlag, "target", "", "search or traversal target")
	runCmd.Flags().StringVar(&orderFlag, "order", "", "depth-first visit order (preorder|inorder|postorder)")
	runCmd.Flags().IntVar(&delayMs, "delay", 0, "pause between events in milliseconds")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print one line per event")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset input")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "configure a playback with guided prompts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGuided,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list preset inputs for a family or algorithm",
		Args:  cobra.ExactArgs(1),
		RunE:  showPresets,
	}

	rootCmd.AddCommand(runCmd, playCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func baseConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if themeFlag != "" {
		cfg.Theme = themeFlag
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	name := args[0]

	reg := algo.NewRegistry()
	alg, err := reg.Get(name)
	if err != nil {
		return err
	}

	cfg, err := baseConfig()
	if err != nil {
		return err
	}

	if preset != "" {
		family := string(alg.Family)
		p := config.GetPreset(family, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(family))
		}
		cfg.Values = p.Values
		cfg.Target = p.Target
		if p.Order != "" {
			cfg.Order = p.Order
		}
	}

	values := cfg.Floats()
	if cmd.Flags().Changed("values") {
		values, err = config.ParseValues(valuesFlag)
		if err != nil {
			return err
		}
	}

	target := cfg.TargetFloat()
	if cmd.Flags().Changed("target") {
		target, err = config.ParseTarget(targetFlag)
		if err != nil {
			return err
		}
	}
	if alg.NeedsTarget && math.IsNaN(target) {
		return fmt.Errorf("%s requires --target", name)
	}

	orderName := cfg.Order
	if cmd.Flags().Changed("order") {
		orderName = orderFlag
	}
	order, err := algo.ParseOrder(orderName)
	if err != nil {
		return err
	}

	input := algo.Input{Values: values, Target: target, Order: order}
	before := append([]float64(nil), values...)

	p := player.New(time.Duration(delayMs) * time.Millisecond)
	if trace {
		p.AddObserver(player.ObserverFunc(func(ev step.Event, b *player.Board) {
			fmt.Printf("%4d  %-10s %s\n", b.Steps, ev.Kind(), tui.DescribeEvent(ev))
		}))
	}

	fmt.Printf("running %s on %d values...\n", name, len(values))
	start := time.Now()

	summary, err := p.Run(context.Background(), alg.New(input), values)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	board := summary.Board

	fmt.Printf("completed in %v\n", elapsed)
	switch summary.Outcome() {
	case player.OutcomeFound:
		fmt.Printf("outcome: found %g at index %d\n", board.Values[board.Found], board.Found)
	case player.OutcomeNotFound:
		fmt.Printf("outcome: %g not found\n", target)
	case player.OutcomeError:
		return fmt.Errorf("%s", board.Message)
	default:
		fmt.Println("outcome: complete")
	}

	fmt.Println("\nevents:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  KIND\tCOUNT")
	kinds := make([]step.Kind, 0, len(summary.Counts))
	for k := range summary.Counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s\t%d\n", k, summary.Counts[k])
	}
	fmt.Fprintf(w, "  total\t%d\n", summary.Events)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\ncomparisons: %d\n", summary.Comparisons)
	if alg.Family == algo.FamilySort {
		fmt.Printf("moves: %d\n", summary.Moves)
	}

	if alg.Family == algo.FamilySort && len(values) >= 2 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(before,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("before"),
		))
		fmt.Println()
		fmt.Println(asciigraph.Plot(board.Values,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("after"),
		))
	}

	if alg.Family == algo.FamilyTraversal && len(board.VisitedValues) > 0 {
		fmt.Printf("\nvisited: %s\n", config.FormatValues(board.VisitedValues))
	}

	return nil
}

func runGuided(cmd *cobra.Command, args []string) error {
	reg := algo.NewRegistry()

	preselected := ""
	if len(args) == 1 {
		if _, err := reg.Get(args[0]); err != nil {
			return err
		}
		preselected = args[0]
	}

	base, err := baseConfig()
	if err != nil {
		return err
	}

	cfg, err := ui.ConfigureWorkflow(reg, base, preselected)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil // user backed out
	}

	alg, err := reg.Get(cfg.Algorithm)
	if err != nil {
		return err
	}
	order, err := algo.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}

	tui.SetTheme(cfg.Theme)
	input := algo.Input{Values: cfg.Floats(), Target: cfg.TargetFloat(), Order: order}
	return tui.RunPlayback(alg, input, cfg.DelayFor(string(alg.Family)))
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := algo.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tTARGET\tORDER\tDESCRIPTION")
	for _, family := range algo.Families {
		for _, a := range reg.ByFamily(family) {
			target := "-"
			if a.NeedsTarget {
				target = "required"
			} else if a.TakesTarget {
				target = "optional"
			}
			order := "-"
			if a.TakesOrder {
				order = "pre/in/post"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.Name, a.Family, target, order, a.Description)
		}
	}
	return w.Flush()
}

func showPresets(cmd *cobra.Command, args []string) error {
	key := args[0]

	names := config.ListPresets(key)
	if names == nil {
		if alg, err := algo.NewRegistry().Get(key); err == nil {
			key = string(alg.Family)
			names = config.ListPresets(key)
		}
	}
	if len(names) == 0 {
		fmt.Printf("no presets for: %s\n", args[0])
		return nil
	}
	sort.Strings(names)

	fmt.Printf("presets for %s:\n", key)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		p := config.GetPreset(key, name)
		detail := config.FormatValues(p.Floats())
		if !math.IsNaN(p.TargetFloat()) {
			detail += "  target=" + config.FormatTarget(p.TargetFloat())
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", name, p.Algorithm, detail)
	}
	return w.Flush()
}
