// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/philipparndt/gonebula/pkg/material"
	"github.com/philipparndt/gonebula/pkg/scene"
	"github.com/philipparndt/gonebula/pkg/tri"
	"github.com/philipparndt/gonebula/pkg/viewer"
)

// Config holds all viewer settings.
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Watch   WatchConfig   `yaml:"watch"`
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewConfig holds what the viewer draws.
type ViewConfig struct {
	ShowGrid      bool   `yaml:"show_grid"`
	ShowWireframe bool   `yaml:"show_wireframe"`
	ShowLegend    bool   `yaml:"show_legend"`
	Shading       string `yaml:"shading"`    // phong or envmap
	Background    string `yaml:"background"` // #rrggbb
}

// RenderConfig holds snapshot settings of the render command.
type RenderConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Azimuth   float64 `yaml:"azimuth"`   // degrees around the y axis
	Elevation float64 `yaml:"elevation"` // degrees above the xz plane
}

// SceneConfig holds load behavior.
type SceneConfig struct {
	ResetClippingOnLoad bool `yaml:"reset_clipping_on_load"`
	SkipInvalidNumbers  bool `yaml:"skip_invalid_numbers"`
}

// WatchConfig holds auto reload settings.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// WindowConfig holds the initial GUI window size.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			ShowGrid:      false,
			ShowWireframe: false,
			ShowLegend:    true,
			Shading:       "phong",
			Background:    "#303030",
		},
		Render: RenderConfig{
			Width:     1024,
			Height:    768,
			Azimuth:   30,
			Elevation: 20,
		},
		Scene: SceneConfig{
			ResetClippingOnLoad: false,
			SkipInvalidNumbers:  false,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 500 * time.Millisecond,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := viewer.ParseShading(c.View.Shading); err != nil {
		return fmt.Errorf("view.shading: %w", err)
	}
	if _, err := material.ParseHex(c.View.Background); err != nil {
		return fmt.Errorf("view.background: %w", err)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", c.Watch.Debounce)
	}
	return nil
}

// ClippingPolicy maps scene.reset_clipping_on_load to a scene policy.
func (c *Config) ClippingPolicy() scene.ClippingPolicy {
	if c.Scene.ResetClippingOnLoad {
		return scene.PolicyResetClipping
	}
	return scene.PolicyKeepClipping
}

// NumberPolicy maps scene.skip_invalid_numbers to a parser policy.
func (c *Config) NumberPolicy() tri.NumberPolicy {
	if c.Scene.SkipInvalidNumbers {
		return tri.NumberPolicySkip
	}
	return tri.NumberPolicyPropagate
}

// SceneOptions returns the scene options the settings ask for.
func (c *Config) SceneOptions() []scene.Option {
	return []scene.Option{
		scene.WithClippingPolicy(c.ClippingPolicy()),
		scene.WithNumberPolicy(c.NumberPolicy()),
	}
}

// ViewerOptions builds render options of the given size from the view
// settings.
func (c *Config) ViewerOptions(width, height int) (viewer.Options, error) {
	shading, err := viewer.ParseShading(c.View.Shading)
	if err != nil {
		return viewer.Options{}, err
	}
	bg, err := material.ParseHex(c.View.Background)
	if err != nil {
		return viewer.Options{}, err
	}

	opts := viewer.DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.Background = bg
	opts.Shading = shading
	opts.Wireframe = c.View.ShowWireframe
	opts.Grid = c.View.ShowGrid
	opts.Axes = c.View.ShowGrid
	opts.Legend = c.View.ShowLegend
	return opts, nil
}

// Orbit returns the render camera angles in radians: elevation then
// azimuth.
func (c *Config) Orbit() (float64, float64) {
	return c.Render.Elevation * math.Pi / 180, c.Render.Azimuth * math.Pi / 180
}
