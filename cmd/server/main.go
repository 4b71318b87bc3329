package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/menyentuh/website/internal/config"
	"github.com/menyentuh/website/internal/logging"
	"github.com/menyentuh/website/internal/server"
	"github.com/menyentuh/website/internal/telemetry"
	"github.com/menyentuh/website/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Configure and get logger
	logging.Configure(logging.DefaultConfig(cfg.LogLevel, cfg.LogFile))
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting menyentuh website %s in %s mode", version.Info(), cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	srv := server.NewServer(cfg, logger)
	if err := srv.Start(ctx); err != nil {
		logger.Error("Server error: %v", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
