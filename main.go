package main

import (
	"fmt"
	"os"
	"time"

	"rating-rank/config"
	"rating-rank/services"
	"rating-rank/storage"
	"rating-rank/utils"
)

func main() {
	logger := utils.NewStderrLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	level, err := utils.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Error("Invalid log level: %v", err)
		os.Exit(1)
	}
	logger = utils.NewLogger(os.Stderr, level)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logger.Info("No SEED set, using %d (export SEED=%d to reproduce this run)", seed, seed)
	}

	logger.Info("=== Rating rank experiment starting ===")
	logger.Info("Config: sample size %d | confidence %.4g | max votes %d",
		cfg.SampleSize, cfg.Confidence, cfg.MaxVotes)

	report, err := services.NewExperiment(cfg, logger).Run(seed)
	if err != nil {
		logger.Error("Experiment failed: %v", err)
		os.Exit(1)
	}

	services.NewReportService(cfg, logger).Print(os.Stdout, report)

	if cfg.CSVOutputPath == "" {
		return
	}

	var out storage.TableWriter
	out, err = storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.Write(report.Rows); err != nil {
		logger.Error("CSV write failed: %v", err)
		return
	}
	fmt.Printf("  Done. Final table (%d rows) → %s\n\n", len(report.Rows), cfg.CSVOutputPath)
}
