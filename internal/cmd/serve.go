package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/drewdunne/responder/internal/logging"
	"github.com/drewdunne/responder/internal/server"
)

// cleanupInterval is how often journal retention runs while serving.
const cleanupInterval = time.Hour

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP query server",
		Long: `Start the HTTP query server. Questions are answered at GET /?q=...,
GET /api?q=... and POST /api/query. The server stops gracefully on SIGINT
or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	cmd.Flags().StringVar(&a.overrides.Host, "host", "", "Host to listen on")
	cmd.Flags().IntVarP(&a.overrides.Port, "port", "p", 0, "Port to listen on")

	return cmd
}

// serve runs the server, and the journal cleanup when a journal is
// configured, until ctx is done or either fails.
func (a *app) serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []server.Option{server.WithLogger(a.logger)}
	if a.journal != nil {
		opts = append(opts, server.WithJournal(a.journal))
	}
	srv := server.New(a.cfg, opts...)

	a.logger.Info("Starting responder server",
		zap.String("host", a.cfg.Server.Host),
		zap.Int("port", a.cfg.Server.Port),
		zap.Bool("journal", a.journal != nil),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Stop the cleanup scheduler once the server is gone
		defer cancel()
		return srv.Run(gctx)
	})

	if a.journal != nil {
		cleaner := logging.NewCleaner(a.journal.Dir(), a.cfg.Logging.RetentionDays)
		scheduler := logging.NewCleanupScheduler(cleaner, cleanupInterval, a.logger)
		g.Go(func() error {
			return scheduler.Run(gctx)
		})
	}

	return g.Wait()
}
