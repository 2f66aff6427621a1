// Package config loads overlay settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mj1618/redraw-master/internal/overlay"
	"github.com/mj1618/redraw-master/internal/platform"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read from the working directory when --config is not given.
const DefaultPath = "redraw.yaml"

// Config holds every tunable of the overlay.
type Config struct {
	Image             string        `yaml:"image"`
	Icon              string        `yaml:"icon"`
	Title             string        `yaml:"title"`
	Opacity           float64       `yaml:"opacity"`
	CursorInterval    time.Duration `yaml:"cursor_interval"`
	ClipboardInterval time.Duration `yaml:"clipboard_interval"`
	ClipboardStrategy string        `yaml:"clipboard_strategy"`
	MinWindow         int           `yaml:"min_window"`
	MaxTexture        int           `yaml:"max_texture"`
	Marker            Marker        `yaml:"marker"`
	Zoom              Zoom          `yaml:"zoom"`
	Radius            RadiusRange   `yaml:"radius"`
}

// Marker configures the projected cursor circle.
type Marker struct {
	Radius int    `yaml:"radius"`
	Color  string `yaml:"color"`
}

// Zoom configures wheel zooming.
type Zoom struct {
	Step float64 `yaml:"step"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// RadiusRange bounds marker resizing.
type RadiusRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Image:             "gojo.png",
		Icon:              "logo.png",
		Title:             "Redrawing Master",
		Opacity:           0.5,
		CursorInterval:    30 * time.Millisecond,
		ClipboardInterval: 200 * time.Millisecond,
		ClipboardStrategy: "auto",
		MinWindow:         200,
		MaxTexture:        4096,
		Marker:            Marker{Radius: 10, Color: "#ff0000"},
		Zoom:              Zoom{Step: 1.1, Min: 0.1, Max: 10.0},
		Radius:            RadiusRange{Min: 1, Max: 100},
	}
}

// Load reads path on top of the defaults. A missing file is only an error
// when required is set.
func Load(path string, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if c.Image == "" {
		errs = append(errs, errors.New("image must not be empty"))
	}
	if c.Opacity <= 0 || c.Opacity > 1 {
		errs = append(errs, fmt.Errorf("opacity %v must be in (0, 1]", c.Opacity))
	}
	if c.CursorInterval <= 0 {
		errs = append(errs, fmt.Errorf("cursor_interval %v must be positive", c.CursorInterval))
	}
	if c.ClipboardInterval <= 0 {
		errs = append(errs, fmt.Errorf("clipboard_interval %v must be positive", c.ClipboardInterval))
	}
	if _, err := platform.ParseStrategy(c.ClipboardStrategy); err != nil {
		errs = append(errs, err)
	}
	if c.MinWindow < 1 {
		errs = append(errs, fmt.Errorf("min_window %d must be at least 1", c.MinWindow))
	}
	if c.MaxTexture < 16 {
		errs = append(errs, fmt.Errorf("max_texture %d must be at least 16", c.MaxTexture))
	}
	if c.Zoom.Step <= 1 {
		errs = append(errs, fmt.Errorf("zoom.step %v must be greater than 1", c.Zoom.Step))
	}
	if c.Zoom.Min <= 0 || c.Zoom.Min > c.Zoom.Max {
		errs = append(errs, fmt.Errorf("zoom range [%v, %v] is invalid", c.Zoom.Min, c.Zoom.Max))
	}
	if c.Radius.Min < 1 || c.Radius.Min > c.Radius.Max {
		errs = append(errs, fmt.Errorf("radius range [%d, %d] is invalid", c.Radius.Min, c.Radius.Max))
	}
	if c.Marker.Radius < c.Radius.Min || c.Marker.Radius > c.Radius.Max {
		errs = append(errs, fmt.Errorf("marker.radius %d outside [%d, %d]", c.Marker.Radius, c.Radius.Min, c.Radius.Max))
	}
	if _, err := ParseColor(c.Marker.Color); err != nil {
		errs = append(errs, fmt.Errorf("marker.color: %w", err))
	}
	return errors.Join(errs...)
}

// Strategy returns the configured clipboard strategy. Validate has already
// rejected unknown names.
func (c Config) Strategy() platform.Strategy {
	s, _ := platform.ParseStrategy(c.ClipboardStrategy)
	return s
}

// Limits converts the zoom and radius settings for the session.
func (c Config) Limits() overlay.Limits {
	return overlay.Limits{
		MinScale:  c.Zoom.Min,
		MaxScale:  c.Zoom.Max,
		ZoomStep:  c.Zoom.Step,
		MinRadius: c.Radius.Min,
		MaxRadius: c.Radius.Max,
	}
}

// MarkerColor returns the parsed marker color.
func (c Config) MarkerColor() color.NRGBA {
	clr, _ := ParseColor(c.Marker.Color)
	return clr
}

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
