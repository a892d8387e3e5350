package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsearch/config"
	"github.com/katalvlaran/tspsearch/prim_kruskal"
	"github.com/katalvlaran/tspsearch/render"
)

type solveOpts struct {
	algo          string
	format        string
	svg           string
	maxExpansions int
	timeLimit     time.Duration
	singleStart   bool
	mst           string
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the minimum-cost tour of an edge-list file",
		Long: `Solve loads an edge list ("cityA cityB cost" per line) and runs the selected
searches. Without a file argument the data_file setting is used, and failing
that the file name is prompted for.`,
		Example: `  tspsearch solve cities.txt
  tspsearch solve cities.txt --algo astar --mst kruskal
  tspsearch solve cities.txt --format json --svg tour.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			applySolveFlags(cmd, &cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}

			path, err := dataFile(args, cfg)
			if err != nil {
				return err
			}

			return c.runSolve(cmd, path, cfg, opts.svg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.algo, "algo", "a", "all", "dfs, ucs, astar or all")
	f.StringVarP(&opts.format, "format", "f", config.FormatText, "output format: text or json")
	f.StringVar(&opts.svg, "svg", "", "write the cheapest tour as SVG to this file")
	f.IntVar(&opts.maxExpansions, "max-expansions", 0, "cap on expanded partial tours (0 = unlimited)")
	f.DurationVar(&opts.timeLimit, "time-limit", 0, "soft time budget per search (0 = none)")
	f.BoolVar(&opts.singleStart, "single-start", false, "start exhaustive search from the first city only")
	f.StringVar(&opts.mst, "mst", string(prim_kruskal.MethodPrim), "MST estimator for A*: prim or kruskal")

	return cmd
}

// applySolveFlags overrides cfg with the flags the user actually set.
func applySolveFlags(cmd *cobra.Command, cfg *config.Config, o solveOpts) {
	f := cmd.Flags()
	if f.Changed("algo") {
		cfg.Algorithm = o.algo
	}
	if f.Changed("format") {
		cfg.Format = o.format
	}
	if f.Changed("max-expansions") {
		cfg.MaxExpansions = o.maxExpansions
	}
	if f.Changed("time-limit") {
		cfg.TimeLimit = config.Duration{Duration: o.timeLimit}
	}
	if f.Changed("single-start") {
		cfg.SingleStart = o.singleStart
	}
	if f.Changed("mst") {
		cfg.MSTMethod = o.mst
	}
}

// dataFile picks the positional argument, then the configured file, then asks.
func dataFile(args []string, cfg config.Config) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.DataFile != "" {
		return cfg.DataFile, nil
	}

	return promptDataFile()
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, cfg config.Config, svgPath string) error {
	ctx := cmd.Context()
	m, err := loadModel(ctx, path)
	if err != nil {
		return err
	}
	algos, err := cfg.Algorithms()
	if err != nil {
		return err
	}

	runID := newRunID()
	runs := make([]run, 0, len(algos))
	for _, a := range algos {
		r, err := search(ctx, m, a, runID, cfg.SearchOptions())
		if err != nil {
			return err
		}
		runs = append(runs, r)
		if cfg.Format == config.FormatText {
			if err := render.Text(c.out, r.report); err != nil {
				return err
			}
			fmt.Fprintln(c.out)
		}
	}
	if cfg.Format == config.FormatJSON {
		reports := make([]render.Report, len(runs))
		for i, r := range runs {
			reports[i] = r.report
		}
		if err := render.JSON(c.out, reports...); err != nil {
			return err
		}
	}

	if svgPath == "" {
		return nil
	}

	return writeSVG(cmd, m, cheapest(runs), svgPath)
}

// cheapest returns the first run with the lowest cost.
func cheapest(runs []run) run {
	best := runs[0]
	for _, r := range runs[1:] {
		if r.result.Cost < best.result.Cost {
			best = r
		}
	}

	return best
}

func writeSVG(cmd *cobra.Command, m render.Costs, r run, path string) error {
	ctx := cmd.Context()
	title := fmt.Sprintf("%s: %s", r.report.Algorithm, r.report.CostString())
	dot, err := render.DOT(m, r.result.Tour, title)
	if err != nil {
		return err
	}
	svg, err := render.SVG(ctx, dot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	loggerFromContext(ctx).Info("wrote tour", "file", path, "algo", r.report.Algorithm)

	return nil
}
