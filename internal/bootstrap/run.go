package bootstrap

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/foodbot-ai/dashboard-api/config"
)

// RunConfig groups everything Run needs.
type RunConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// Run starts the HTTP server, restores the persisted selector cascade,
// and blocks until SIGINT/SIGTERM or a fatal error.
func Run(ctx context.Context, cfg RunConfig) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	g, gctx := errgroup.WithContext(ctx)

	// Warm the cascade from the persisted selection so the first request
	// doesn't pay for the restore fetches. Failures are non-fatal.
	g.Go(func() error {
		if cfg.Services.Cascade == nil {
			return nil
		}
		if _, err := cfg.Services.Cascade.Restore(gctx); err != nil {
			logger.WarnContext(gctx, "cascade restore failed", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return ShutdownHTTPServer(context.Background(), server, logger)
	})

	return g.Wait()
}
