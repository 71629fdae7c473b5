package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"complyhub/internal/app"
	"complyhub/internal/platform/config"
	"complyhub/internal/platform/logger"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Domain logic lives in the pkg clients and internal/interactions.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	a, err := app.New(cfg, log)
	if err != nil {
		log.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Serve(ctx); err != nil {
		log.Error("server stopped", "error", err)
		stop()
		a.Close()
		os.Exit(1)
	}
	log.Info("server stopped")
}
