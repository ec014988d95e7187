package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test observer defaults
	if cfg.Observer.Latitude != 42.5950581 {
		t.Errorf("expected latitude 42.5950581, got %v", cfg.Observer.Latitude)
	}
	if cfg.Observer.Longitude != -8.74306467245 {
		t.Errorf("expected longitude -8.74306467245, got %v", cfg.Observer.Longitude)
	}

	// Test catalog defaults
	if len(cfg.Stars) != 2 {
		t.Fatalf("expected 2 default stars, got %d", len(cfg.Stars))
	}
	if cfg.Stars[0].Name != "Orion Nebula" || *cfg.Stars[0].RA != 101.56875 {
		t.Errorf("unexpected first star %q ra %v", cfg.Stars[0].Name, *cfg.Stars[0].RA)
	}
	if cfg.Stars[1].Name != "Sirius" || *cfg.Stars[1].Dec != -5.39255555555 {
		t.Errorf("unexpected second star %q dec %v", cfg.Stars[1].Name, *cfg.Stars[1].Dec)
	}

	// Test view defaults
	if cfg.View.ShowEquatorialGrid {
		t.Error("expected equatorial grid hidden by default")
	}
	if !cfg.View.ShowAzimuthalGrid {
		t.Error("expected azimuthal grid shown by default")
	}
	if cfg.View.Frozen {
		t.Error("expected time running by default")
	}

	// Test picking defaults
	if cfg.Picking.Threshold != 0.05 {
		t.Errorf("expected threshold 0.05, got %v", cfg.Picking.Threshold)
	}
	if cfg.Picking.DoubleClick != 200*time.Millisecond {
		t.Errorf("expected double click 200ms, got %v", cfg.Picking.DoubleClick)
	}
	if cfg.Picking.Policy != "last" {
		t.Errorf("expected policy 'last', got %s", cfg.Picking.Policy)
	}

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	// Test telescope defaults
	if cfg.Telescope.SerialPath != "/dev/sTTY_ACM0" {
		t.Errorf("expected serial path /dev/sTTY_ACM0, got %s", cfg.Telescope.SerialPath)
	}
	if cfg.Telescope.SDRPPURL != "https://localhost:7777" {
		t.Errorf("expected SDR++ url https://localhost:7777, got %s", cfg.Telescope.SDRPPURL)
	}

	// Test debug defaults
	if cfg.Debug.ScreenshotFormat != "png" {
		t.Errorf("expected screenshot format 'png', got %s", cfg.Debug.ScreenshotFormat)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
observer:
  latitude: 40.4168
  longitude: -3.7038

stars:
  - name: "Vega"
    ra: 279.23473479
    dec: 38.78368896

view:
  show_equatorial_grid: true
  show_azimuthal_grid: false
  frozen: true

picking:
  threshold: 0.08
  double_click: 300ms
  policy: nearest

graphics:
  width: 1920
  height: 1080
  fullscreen: true

telescope:
  serial_path: "/dev/ttyUSB0"

logging:
  level: "debug"
  log_file: "skydome.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Observer.Latitude != 40.4168 || cfg.Observer.Longitude != -3.7038 {
		t.Errorf("unexpected observer %+v", cfg.Observer)
	}
	if len(cfg.Stars) != 1 || cfg.Stars[0].Name != "Vega" {
		t.Fatalf("expected file catalog to replace defaults, got %+v", cfg.Stars)
	}
	if *cfg.Stars[0].RA != 279.23473479 || *cfg.Stars[0].Dec != 38.78368896 {
		t.Errorf("unexpected Vega coordinates %v %v", *cfg.Stars[0].RA, *cfg.Stars[0].Dec)
	}
	if !cfg.View.ShowEquatorialGrid || cfg.View.ShowAzimuthalGrid || !cfg.View.Frozen {
		t.Errorf("unexpected view %+v", cfg.View)
	}
	if cfg.Picking.Threshold != 0.08 {
		t.Errorf("expected threshold 0.08, got %v", cfg.Picking.Threshold)
	}
	if cfg.Picking.DoubleClick != 300*time.Millisecond {
		t.Errorf("expected double click 300ms, got %v", cfg.Picking.DoubleClick)
	}
	if cfg.Picking.Policy != "nearest" {
		t.Errorf("expected policy 'nearest', got %s", cfg.Picking.Policy)
	}
	if cfg.Graphics.Width != 1920 || !cfg.Graphics.Fullscreen {
		t.Errorf("unexpected graphics %+v", cfg.Graphics)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync default to survive a partial graphics section")
	}
	if cfg.Telescope.SerialPath != "/dev/ttyUSB0" {
		t.Errorf("expected serial path /dev/ttyUSB0, got %s", cfg.Telescope.SerialPath)
	}
	if cfg.Telescope.SDRPPURL != "https://localhost:7777" {
		t.Errorf("expected default SDR++ url to survive, got %s", cfg.Telescope.SDRPPURL)
	}
	if cfg.Logging.LogFile != "skydome.log" {
		t.Errorf("expected log file 'skydome.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	ra, dec := 10.0, 20.0

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
		anyErr  bool
	}{
		{name: "defaults", modify: func(*Config) {}},
		{
			name:    "missing ra",
			modify:  func(c *Config) { c.Stars = []StarConfig{{Name: "x", Dec: &dec}} },
			wantErr: ErrMissingRA,
		},
		{
			name:    "missing dec",
			modify:  func(c *Config) { c.Stars = []StarConfig{{Name: "x", RA: &ra}} },
			wantErr: ErrMissingDec,
		},
		{
			name:   "latitude out of range",
			modify: func(c *Config) { c.Observer.Latitude = 91 },
			anyErr: true,
		},
		{
			name:   "zero threshold",
			modify: func(c *Config) { c.Picking.Threshold = 0 },
			anyErr: true,
		},
		{
			name:   "zero double click",
			modify: func(c *Config) { c.Picking.DoubleClick = 0 },
			anyErr: true,
		},
		{
			name:   "negative double click",
			modify: func(c *Config) { c.Picking.DoubleClick = -time.Millisecond },
			anyErr: true,
		},
		{
			name:   "unknown policy",
			modify: func(c *Config) { c.Picking.Policy = "closest" },
			anyErr: true,
		},
		{
			name:   "unknown screenshot format",
			modify: func(c *Config) { c.Debug.ScreenshotFormat = "gif" },
			anyErr: true,
		},
		{
			name:   "empty catalog",
			modify: func(c *Config) { c.Stars = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("expected an error, got nil")
				}
			default:
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestStarWithoutDecFailsLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
stars:
  - name: "Half"
    ra: 12.5
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrMissingDec) {
		t.Errorf("expected ErrMissingDec, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if filepath.Dir(DefaultPath()) != dir {
		t.Errorf("expected default path inside %s, got %s", dir, DefaultPath())
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := WriteDefault(path)
	if err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	if !written {
		t.Error("expected a file to be written")
	}

	cfg := &Config{}
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if len(cfg.Stars) != 2 || cfg.Stars[1].Name != "Sirius" {
		t.Errorf("expected default catalog in written file, got %+v", cfg.Stars)
	}
	if cfg.Picking.DoubleClick != 200*time.Millisecond {
		t.Errorf("expected double click 200ms, got %v", cfg.Picking.DoubleClick)
	}

	// An existing file is left alone.
	if err := os.WriteFile(path, []byte("observer:\n  latitude: 1\n"), 0644); err != nil {
		t.Fatalf("failed to overwrite config: %v", err)
	}
	written, err = WriteDefault(path)
	if err != nil || written {
		t.Errorf("expected existing file to be kept, got written=%v err=%v", written, err)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "observer flags",
			setup: func() {
				*flagLat = 0
				*flagLon = 12.5
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Observer.Latitude != 0 {
					t.Errorf("expected latitude 0, got %v", cfg.Observer.Latitude)
				}
				if cfg.Observer.Longitude != 12.5 {
					t.Errorf("expected longitude 12.5, got %v", cfg.Observer.Longitude)
				}
			},
			teardown: func() {
				*flagLat = math.NaN()
				*flagLon = math.NaN()
			},
		},
		{
			name:  "unset observer flags",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Observer != Default().Observer {
					t.Errorf("expected default observer, got %+v", cfg.Observer)
				}
			},
			teardown: func() {},
		},
		{
			name: "frozen flag",
			setup: func() {
				*flagFrozen = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.View.Frozen {
					t.Error("expected time stopped with frozen flag")
				}
			},
			teardown: func() {
				*flagFrozen = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Source != configPath {
		t.Errorf("expected source %s, got %s", configPath, cfg.Source)
	}
	if len(cfg.Stars) != 2 {
		t.Errorf("expected default catalog when file has none, got %d stars", len(cfg.Stars))
	}
}
