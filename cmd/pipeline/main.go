package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/hoopsight/stintline/internal/app"
	"github.com/hoopsight/stintline/internal/config"
	"github.com/hoopsight/stintline/internal/observability"
	"github.com/hoopsight/stintline/internal/platform/logging"
	"github.com/hoopsight/stintline/internal/usecase"
)

func main() {
	date := flag.String("date", "", "slate date as YYYY-MM-DD, defaults to yesterday")
	workers := flag.Int("workers", 0, "max concurrent game transforms, defaults to PIPELINE_MAX_WORKERS")
	skipCleanup := flag.Bool("skip-cleanup", false, "keep documents older than the current month")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall run deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	maxWorkers := *workers
	if maxWorkers <= 0 {
		maxWorkers = cfg.PipelineMaxWorkers
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := application.Pipeline.Run(ctx, usecase.PipelineInput{
		Date:        *date,
		MaxWorkers:  maxWorkers,
		SkipCleanup: *skipCleanup || cfg.PipelineSkipCleanup,
	})

	if closeErr := application.Close(); closeErr != nil {
		logger.Error("close app resources", "error", closeErr)
	}
	if shutdownErr := shutdownUptrace(ctx); shutdownErr != nil {
		logger.Error("shutdown uptrace", "error", shutdownErr)
	}

	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("pipeline run finished",
		"date", result.Date,
		"games", result.GameCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)
	if result.FailedCount > 0 {
		os.Exit(1)
	}
}
