// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Errors returned by Validate.
var (
	ErrMissingRA  = errors.New("star is missing ra")
	ErrMissingDec = errors.New("star is missing dec")
)

// Config holds all application settings.
type Config struct {
	Observer  ObserverConfig  `yaml:"observer"`
	Stars     []StarConfig    `yaml:"stars"`
	View      ViewConfig      `yaml:"view"`
	Picking   PickingConfig   `yaml:"picking"`
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Telescope TelescopeConfig `yaml:"telescope"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-"`
}

// ObserverConfig is the observing location in degrees, longitude east
// positive.
type ObserverConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// StarConfig is one catalog entry in degrees. RA and Dec are pointers so a
// missing key can be told apart from zero.
type StarConfig struct {
	Name string   `yaml:"name"`
	RA   *float64 `yaml:"ra"`
	Dec  *float64 `yaml:"dec"`
}

// ViewConfig holds the initial view toggles.
type ViewConfig struct {
	ShowEquatorialGrid bool `yaml:"show_equatorial_grid"`
	ShowAzimuthalGrid  bool `yaml:"show_azimuthal_grid"`
	Frozen             bool `yaml:"frozen"`
}

// PickingConfig holds star picking settings.
type PickingConfig struct {
	Threshold   float32       `yaml:"threshold"`
	DoubleClick time.Duration `yaml:"double_click"`
	Policy      string        `yaml:"policy"` // "last" or "nearest"
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TelescopeConfig holds the telescope endpoints shown in the telescope tab.
type TelescopeConfig struct {
	SerialPath string `yaml:"serial_path"`
	SDRPPURL   string `yaml:"sdrpp_url"`
	RemoteURL  string `yaml:"remote_url"`
}

// DebugConfig holds screenshot settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // "png" or "bmp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

func deg(v float64) *float64 { return &v }

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Observer: ObserverConfig{
			Latitude:  42.5950581,
			Longitude: -8.74306467245,
		},
		Stars: []StarConfig{
			{Name: "Orion Nebula", RA: deg(101.56875), Dec: deg(-16.7514722222)},
			{Name: "Sirius", RA: deg(83.826791666666), Dec: deg(-5.39255555555)},
		},
		View: ViewConfig{
			ShowEquatorialGrid: false,
			ShowAzimuthalGrid:  true,
			Frozen:             false,
		},
		Picking: PickingConfig{
			Threshold:   0.05,
			DoubleClick: 200 * time.Millisecond,
			Policy:      "last",
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Telescope: TelescopeConfig{
			SerialPath: "/dev/sTTY_ACM0",
			SDRPPURL:   "https://localhost:7777",
			RemoteURL:  "http://localhost:7777",
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Observer.Latitude < -90 || c.Observer.Latitude > 90 {
		return fmt.Errorf("observer latitude %v out of range", c.Observer.Latitude)
	}
	for i, s := range c.Stars {
		if s.RA == nil {
			return fmt.Errorf("stars[%d] %q: %w", i, s.Name, ErrMissingRA)
		}
		if s.Dec == nil {
			return fmt.Errorf("stars[%d] %q: %w", i, s.Name, ErrMissingDec)
		}
	}
	if c.Picking.Threshold <= 0 {
		return fmt.Errorf("picking threshold must be positive, got %v", c.Picking.Threshold)
	}
	if c.Picking.DoubleClick <= 0 {
		return fmt.Errorf("picking double_click must be positive, got %v", c.Picking.DoubleClick)
	}
	switch c.Picking.Policy {
	case "", "last", "nearest":
	default:
		return fmt.Errorf("unknown picking policy %q", c.Picking.Policy)
	}
	switch c.Debug.ScreenshotFormat {
	case "", "png", "bmp":
	default:
		return fmt.Errorf("unknown screenshot format %q", c.Debug.ScreenshotFormat)
	}
	return nil
}
