package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aurorder/internal/server"
	depsaur "github.com/matzehuels/aurorder/pkg/deps/aur"
)

// shutdownTimeout bounds how long in-flight requests may finish after a
// stop signal.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve build orders over HTTP",
		Long: `Start an HTTP server answering build order queries as JSON.

  GET /v1/order/{package}   install plan
  GET /v1/graph/{package}   dependency graph (?format=dot|svg)
  GET /healthz              liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			client, cc, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer cc.Close()

			srv := &http.Server{
				Addr: addr,
				Handler: server.New(server.Config{
					Resolver: depsaur.NewResolver(client),
					Logger:   logger,
					Timeout:  timeout,
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return listen(ctx, srv, func() { logger.Info("listening", "addr", addr, "endpoint", c.Config.Endpoint) })
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request resolution limit")

	return cmd
}

// listen runs srv until ctx is cancelled, then shuts it down gracefully.
func listen(ctx context.Context, srv *http.Server, started func()) error {
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	started()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
