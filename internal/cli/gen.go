package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsearch/builder"
	"github.com/katalvlaran/tspsearch/distance"
)

// Instance kinds accepted by gen.
const (
	kindComplete  = "complete"
	kindCycle     = "cycle"
	kindSparse    = "sparse"
	kindEuclidean = "euclidean"
)

type genOpts struct {
	kind     string
	cities   int
	seed     int64
	min, max int64
	p        float64
	grid     int
	output   string
}

func (c *CLI) genCommand() *cobra.Command {
	var opts genOpts

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random instance as an edge list",
		Example: `  tspsearch gen --kind euclidean --cities 8 --seed 42 -o cities.txt
  tspsearch gen --kind sparse --cities 6 --p 0.7 | tspsearch solve /dev/stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			edges, err := generate(opts)
			if err != nil {
				return err
			}

			return c.writeEdges(cmd, edges, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.kind, "kind", kindEuclidean, "complete, cycle, sparse or euclidean")
	f.IntVarP(&opts.cities, "cities", "n", 6, "number of cities")
	f.Int64Var(&opts.seed, "seed", 0, "RNG seed (default: time-based)")
	f.Int64Var(&opts.min, "min", 1, "minimum edge weight (complete, cycle, sparse)")
	f.Int64Var(&opts.max, "max", 100, "maximum edge weight (complete, cycle, sparse)")
	f.Float64Var(&opts.p, "p", 0.5, "edge probability (sparse)")
	f.IntVar(&opts.grid, "grid", 100, "side of the point square (euclidean)")
	f.StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// generate maps the flags onto a builder constructor.
func generate(o genOpts) ([]distance.Edge, error) {
	var ctor builder.Constructor
	switch o.kind {
	case kindComplete:
		ctor = builder.Complete(o.cities)
	case kindCycle:
		ctor = builder.Cycle(o.cities)
	case kindSparse:
		ctor = builder.RandomSparse(o.cities, o.p)
	case kindEuclidean:
		ctor = builder.Euclidean(o.cities)
	default:
		return nil, fmt.Errorf("unknown instance kind %q", o.kind)
	}

	return builder.Edges(ctor,
		builder.WithSeed(o.seed),
		builder.WithWeightRange(o.min, o.max),
		builder.WithGridSize(o.grid),
	)
}

func (c *CLI) writeEdges(cmd *cobra.Command, edges []distance.Edge, o genOpts) (err error) {
	var w io.Writer = c.out
	if o.output != "" {
		f, cerr := os.Create(o.output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if err := distance.Write(w, edges); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("generated instance", "kind", o.kind, "cities", o.cities,
		"edges", len(edges), "seed", o.seed)

	return nil
}
