package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"lifepad/internal/app"
	"lifepad/internal/fill"
	"lifepad/internal/tui"
	"lifepad/pkg/life"
	"lifepad/pkg/pattern"
)

var (
	configFile  string
	width       int
	height      int
	cellSize    int
	tps         int
	seed        int64
	density     float64
	mode        string
	patternName string
	startPaused bool

	benchGens int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifepad",
		Short: "interactive Game of Life sketchpad",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return app.Run(cfg, cfg.NewSimulation())
		},
	}
	bindBoardFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the board in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, cfg.NewSimulation())
		},
	}
	bindBoardFlags(tuiCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping on growing boards",
		RunE:  runBench,
	}
	bindBoardFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchGens, "gens", 500, "generations per board")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list built-in patterns",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range pattern.Names() {
				p, _ := pattern.Get(name)
				w, h := p.Size()
				fmt.Printf("%s (%dx%d, %d cells)\n%s\n\n", name, w, h, len(p.Cells()), p)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, benchCmd, patternsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bindBoardFlags(cmd *cobra.Command) {
	defaults := app.NewConfig()
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&width, "width", defaults.Width, "board width in cells")
	cmd.Flags().IntVar(&height, "height", defaults.Height, "board height in cells")
	cmd.Flags().IntVar(&cellSize, "cell", defaults.Cell, "cell size in pixels (gui)")
	cmd.Flags().IntVar(&tps, "tps", defaults.TPS, "simulation ticks per second")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "random seed")
	cmd.Flags().Float64Var(&density, "density", defaults.Density, "alive fraction for seeded boards")
	cmd.Flags().StringVar(&mode, "mode", defaults.Mode, "initial board: empty, soup, noise or pattern")
	cmd.Flags().StringVar(&patternName, "pattern", defaults.Pattern, "pattern name (with --mode pattern)")
	cmd.Flags().BoolVar(&startPaused, "paused", defaults.Paused, "start paused")
}

// loadConfig merges defaults, the optional config file and explicit flags.
// Flags only override the file when actually set on the command line.
func loadConfig(cmd *cobra.Command) (*app.Config, error) {
	cfg := app.NewConfig()
	if configFile != "" {
		loaded, err := app.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("cell") {
		cfg.Cell = cellSize
	}
	if flags.Changed("tps") {
		cfg.TPS = tps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("density") {
		cfg.Density = density
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("pattern") {
		cfg.Pattern = patternName
	}
	if flags.Changed("paused") {
		cfg.Paused = startPaused
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if benchGens < 1 {
		return fmt.Errorf("gens must be positive, got %d", benchGens)
	}

	sizes := [][2]int{
		{cfg.Width, cfg.Height},
		{cfg.Width * 2, cfg.Height * 2},
		{cfg.Width * 4, cfg.Height * 4},
	}

	fmt.Printf("benchmarking %d generations per board, density %.2f, seed %d\n\n", benchGens, cfg.Density, cfg.Seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOARD\tGENS\tTIME\tGENS/SEC\tFINAL POP")

	var history []float64
	for i, size := range sizes {
		sim := life.NewSimulation(size[0], size[1])
		fill.Soup(sim, cfg.Seed, cfg.Density)

		start := time.Now()
		for g := 0; g < benchGens; g++ {
			sim.SingleStep()
			if i == 0 {
				history = append(history, float64(sim.Population()))
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%d\n",
			size[0], size[1], benchGens,
			elapsed.Round(time.Microsecond),
			float64(benchGens)/elapsed.Seconds(),
			sim.Population())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(history) > 1 {
		fmt.Println()
		caption := fmt.Sprintf("population, %dx%d soup", cfg.Width, cfg.Height)
		fmt.Println(asciigraph.Plot(history, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption(caption)))
	}
	return nil
}
