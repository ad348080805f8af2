package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/airdrop/internal/config"
	"github.com/gabapcia/airdrop/internal/handlers/cli"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if cfg.OtelEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to initialize telemetry:", err)
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithDailyFile(cfg.LogDir)); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	svc, closeAll, err := build(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to build services", "error", err)
		return 1
	}
	defer closeAll()

	if err := cli.Run(ctx, svc); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "command failed", "error", err)
			return 1
		}
	}

	return 0
}
