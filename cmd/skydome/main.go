// Package main is the entry point for the Skydome sky viewer.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/config"
	"github.com/Faultbox/skydome/internal/gui"
	"github.com/Faultbox/skydome/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

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

	logger.Info("=== Skydome ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Source == "" {
		path := config.DefaultPath()
		written, err := config.WriteDefault(path)
		if err != nil {
			logger.Warn("could not write default config", zap.String("path", path), zap.Error(err))
		} else if written {
			logger.Info("wrote default config", zap.String("path", path))
		}
	}

	g, err := gui.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	g.Run()

	logger.Info("closed normally")
}
