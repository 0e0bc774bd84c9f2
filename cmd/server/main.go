package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/neurosell/health-server/internal/platform/config"
	"github.com/neurosell/health-server/internal/platform/logging"
	"github.com/neurosell/health-server/internal/routes"
	"github.com/neurosell/health-server/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, config.Load)
	stop()
	// Syncing stdout reports EINVAL on some platforms.
	_ = logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run loads configuration, binds the listener and serves until ctx is cancelled.
// Failures are logged before being returned.
func run(ctx context.Context, load func(...string) (config.Config, error)) error {
	if err := logging.Err(); err != nil {
		logging.LogError(ctx, "logger init error", err)
	}

	cfg, err := load()
	if err != nil {
		logging.LogWarn(ctx, "config load error, continuing with environment", zap.Error(err))
		cfg = config.FromEnv()
	}
	if cfg.Warning != "" {
		logging.LogWarn(ctx, cfg.Warning)
	}

	addr := cfg.Addr()
	ln, err := server.Listen(addr)
	if err != nil {
		logging.LogError(ctx, "listen failed", err, zap.String("addr", addr))
		return err
	}
	logging.LogInfo(ctx, "server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("version", Version),
	)

	if err := server.Run(ctx, server.New(addr, routes.New()), ln); err != nil {
		logging.LogError(ctx, "server error", err)
		return err
	}
	logging.LogInfo(ctx, "server exited")
	return nil
}
