package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsearch/api"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the searches over HTTP",
		Example: `  tspsearch serve --addr :8080
  curl --data-binary @cities.txt 'localhost:8080/v1/solve?algo=astar'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				c.cfg.Addr = addr
			}

			return c.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// serve runs the HTTP server until ctx is cancelled.
func (c *CLI) serve(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              c.cfg.Addr,
		Handler:           api.New(logger, c.cfg.SearchOptions()...).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")

	return srv.Shutdown(shutdownCtx)
}
