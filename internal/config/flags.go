package config

import (
	"flag"
	"math"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLat        = flag.Float64("lat", math.NaN(), "Observer latitude in degrees")
	flagLon        = flag.Float64("lon", math.NaN(), "Observer longitude in degrees, east positive")
	flagFrozen     = flag.Bool("frozen", false, "Start with time stopped")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if !math.IsNaN(*flagLat) {
		cfg.Observer.Latitude = *flagLat
	}
	if !math.IsNaN(*flagLon) {
		cfg.Observer.Longitude = *flagLon
	}
	if *flagFrozen {
		cfg.View.Frozen = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
