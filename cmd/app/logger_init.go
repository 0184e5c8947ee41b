package main

import (
	"os"

	"github.com/osse101/TextMaple_Go/internal/config"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// initLogger writes logs to a file under LOG_DIR so the terminal stays free for the game
func initLogger(cfg *config.Config) (*os.File, error) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	f, err := logger.OpenLogFile(cfg.LogDir, cfg.ServiceName)
	if err != nil {
		return nil, err
	}
	logger.InitLoggerWithWriter(loggerConfig, f)
	return f, nil
}
