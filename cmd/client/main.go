// Package main is the entry point for the stroll demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/stroll/internal/config"
	"github.com/Faultbox/stroll/internal/game"
	"github.com/Faultbox/stroll/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Stroll ===", zap.String("config", cfgPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg, cfgPath); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config, cfgPath string) error {
	g, err := game.New(cfg, cfgPath)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer g.Close()

	return g.Run()
}
