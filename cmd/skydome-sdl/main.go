// Package main is the plain SDL variant of the Skydome sky viewer: the sky
// fills the window and the panel is summarized in the window title.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/config"
	"github.com/Faultbox/skydome/internal/logger"
	"github.com/Faultbox/skydome/internal/sdlapp"
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

	logger.Info("=== Skydome (SDL) ===")
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

	a, err := sdlapp.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("run error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
