// Package cli implements the tspsearch command-line interface.
//
// Commands:
//   - solve: run one or all searches on an edge-list file and print the tours
//   - menu: interactive technique menu
//   - serve: HTTP API (see package api)
//   - gen: random instances (see package builder)
//
// Settings come from config.Load (--config, --env-file, TSPSEARCH_*);
// command flags win over them. --verbose switches logging to debug.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsearch/config"
	"github.com/katalvlaran/tspsearch/distance"
	"github.com/katalvlaran/tspsearch/render"
	"github.com/katalvlaran/tspsearch/tsp"
)

const appName = "tspsearch"

// Version is reported by --version; main may override it via ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	cfg        config.Config
	configPath string
	envFiles   []string
	verbose    bool
}

// New creates a CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    config.Default(),
	}
}

// Config returns the settings resolved for the running command.
func (c *CLI) Config() config.Config { return c.cfg }

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "tspsearch finds minimum-cost tours with DFS, UCS and A*",
		Long:          `tspsearch solves small symmetric traveling-salesman instances exactly, comparing exhaustive depth-first search, uniform-cost search and MST-guided A*.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.configPath, c.envFiles...)
			if err != nil {
				return err
			}
			c.cfg = cfg
			level := parseLevel(cfg.LogLevel)
			if c.verbose {
				level = log.DebugLevel
			}
			c.Logger.SetLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&c.configPath, "config", "c", "", "YAML or TOML config file")
	pf.StringSliceVar(&c.envFiles, "env-file", nil, "dotenv files with TSPSEARCH_* overrides")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.menuCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.genCommand())

	return root
}

// loadModel loads path, logging where a LoadError points.
func loadModel(ctx context.Context, path string) (*distance.Model, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	m, err := distance.LoadFile(path)
	if err != nil {
		var le *distance.LoadError
		if errors.As(err, &le) {
			logger.Error("cannot load data file", "file", le.File, "line", le.Line)
		}
		return nil, err
	}
	prog.done("loaded data file", "file", path, "cities", m.Len(), "edges", m.Edges())

	return m, nil
}

// run is one executed search with its presentation form.
type run struct {
	result tsp.Result
	report render.Report
}

// search runs algo on m and stamps the report with runID and elapsed time.
func search(ctx context.Context, m *distance.Model, algo tsp.Algorithm, runID string, opts []tsp.Option) (run, error) {
	logger := loggerFromContext(ctx).With("run", runID, "algo", algo.Slug())
	start := time.Now()
	res, err := tsp.Solve(m, algo, append(opts[:len(opts):len(opts)], tsp.WithContext(ctx))...)
	if err != nil {
		return run{}, fmt.Errorf("%s: %w", algo, err)
	}
	rep, err := render.NewReport(m, res)
	if err != nil {
		return run{}, err
	}
	rep.RunID = runID
	rep.Elapsed = render.Duration(time.Since(start))
	logger.Debug("search done", "cost", rep.CostString(), "expanded", res.Stats.Expanded,
		"completed", res.Stats.Completed, "peak", res.Stats.MaxFrontier)

	return run{result: res, report: rep}, nil
}

// newRunID returns the identifier shared by the searches of one invocation.
func newRunID() string { return uuid.NewString() }
