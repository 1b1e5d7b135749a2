// Package config loads paintmate settings from a TOML file.
//
// The file is optional. Keys that are missing, or set to their zero value,
// keep their defaults:
//
//	[canvas]
//	width = 800
//	height = 600
//
//	[history]
//	capacity = 50
//
//	[brush]
//	size = 10.0
//	color = "#000000"
//	opacity = 1.0
//
//	[export]
//	jpeg_quality = 90
//
//	[log]
//	level = "info"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/paintmate"
)

// DefaultPath is the configuration file used when no path is given.
const DefaultPath = "~/.config/paintmate/config.toml"

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all paintmate settings.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	History History `toml:"history"`
	Brush   Brush   `toml:"brush"`
	Export  Export  `toml:"export"`
	Log     Log     `toml:"log"`
}

// Canvas holds the size of new documents.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// History bounds the undo stack.
type History struct {
	Capacity int `toml:"capacity"`
}

// Brush holds the initial painting tool settings.
type Brush struct {
	Size    float64 `toml:"size"`
	Color   string  `toml:"color"`
	Opacity float64 `toml:"opacity"`
}

// Export holds encoder settings.
type Export struct {
	JPEGQuality int `toml:"jpeg_quality"`
}

// Log selects the log level: debug, info, warn or error.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Canvas:  Canvas{Width: 800, Height: 600},
		History: History{Capacity: 50},
		Brush:   Brush{Size: 10, Color: "#000000", Opacity: 1},
		Export:  Export{JPEGQuality: 90},
		Log:     Log{Level: "info"},
	}
}

// Load reads the configuration file at path, expanding a leading "~".
// An empty path selects DefaultPath. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: expand %q: %w", path, err)
	}
	data, err := os.ReadFile(filepath.Clean(expanded))
	if errors.Is(err, os.ErrNotExist) {
		paintmate.Logger().Debug("config: no file, using defaults", "path", expanded)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expanded, err)
	}
	return cfg, nil
}

// Parse decodes TOML data, overlays it onto the defaults and validates the
// result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var file Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	cfg := Default()
	if err := cfg.overlay(&file); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overlay copies the non-zero values of src onto c, section by section.
func (c *Config) overlay(src *Config) error {
	opt := copier.Option{IgnoreEmpty: true}
	pairs := []struct{ to, from any }{
		{&c.Canvas, &src.Canvas},
		{&c.History, &src.History},
		{&c.Brush, &src.Brush},
		{&c.Export, &src.Export},
		{&c.Log, &src.Log},
	}
	for _, p := range pairs {
		if err := copier.CopyWithOption(p.to, p.from, opt); err != nil {
			return fmt.Errorf("config: overlay: %w", err)
		}
	}
	return nil
}

// Validate checks every value and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Canvas.Width > 0, "canvas.width must be positive, got %d", c.Canvas.Width)
	check(c.Canvas.Height > 0, "canvas.height must be positive, got %d", c.Canvas.Height)
	check(c.History.Capacity > 0, "history.capacity must be positive, got %d", c.History.Capacity)
	check(c.Brush.Size > 0, "brush.size must be positive, got %g", c.Brush.Size)
	check(c.Brush.Opacity >= 0 && c.Brush.Opacity <= 1, "brush.opacity must be in [0, 1], got %g", c.Brush.Opacity)
	_, err := paintmate.ParseHex(c.Brush.Color)
	check(err == nil, "brush.color %q is not a hex color", c.Brush.Color)
	check(c.Export.JPEGQuality >= 1 && c.Export.JPEGQuality <= 100,
		"export.jpeg_quality must be in [1, 100], got %d", c.Export.JPEGQuality)
	var lvl slog.Level
	check(lvl.UnmarshalText([]byte(c.Log.Level)) == nil, "log.level %q is not a level", c.Log.Level)

	return errors.Join(errs...)
}

// BrushColor returns the parsed brush color, or black if it does not parse.
func (c *Config) BrushColor() color.NRGBA {
	col, err := paintmate.ParseHex(c.Brush.Color)
	if err != nil {
		return paintmate.Black
	}
	return col
}

// LogLevel returns the configured level, or Info if it does not parse.
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Marshal encodes c as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Save writes c to path as TOML, creating parent directories.
func (c *Config) Save(path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("config: expand %q: %w", path, err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(expanded), data, 0o644); err != nil { //nolint:gosec // settings are not secrets
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}
