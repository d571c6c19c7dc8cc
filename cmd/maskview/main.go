// Package main is the entry point for the CyberMask preview.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/config"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== CyberMask Preview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := newApp(cfg)
	if err != nil {
		logger.Error("failed to create preview", zap.Error(err))
		os.Exit(1)
	}
	defer a.close()

	if err := a.run(); err != nil {
		logger.Error("preview error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("preview closed normally")
}
