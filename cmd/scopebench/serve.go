package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/go-scopeguard/internal/adapters/http"
)

const serverShutdownTimeout = 15 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve recorded runs over HTTP until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return withApp(cmd, opts, func(p *process) error {
				return serve(ctx, p)
			})
		},
	}
}

// serve blocks until ctx is canceled. The server drains before serve
// returns, so the telemetry flush registered by withApp runs after it.
func serve(ctx context.Context, p *process) error {
	server, err := do.Invoke[*adapthttp.Server](p.injector)
	if err != nil {
		return err
	}
	p.registerHealthCheckers()

	err = server.Run(ctx, serverShutdownTimeout)
	p.logger.InfoContext(context.WithoutCancel(ctx), "server stopped")
	return err
}
