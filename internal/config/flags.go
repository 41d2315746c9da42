package config

import (
	"github.com/spf13/pflag"
)

// Flags holds command line overrides. Only flags set explicitly override
// the file.
type Flags struct {
	fs *pflag.FlagSet

	configPath    string
	debug         bool
	logFile       string
	shading       string
	wireframe     bool
	grid          bool
	legend        bool
	resetClipping bool
	skipInvalid   bool
	watch         bool
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.configPath, "config", "", "Path to config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.logFile, "log-file", "", "Also write logs to this file")
	fs.StringVar(&f.shading, "shading", "", "Surface shading: phong or envmap")
	fs.BoolVar(&f.wireframe, "wireframe", false, "Draw triangle edges")
	fs.BoolVar(&f.grid, "grid", false, "Draw the reference grid and axes")
	fs.BoolVar(&f.legend, "legend", true, "Draw the material legend")
	fs.BoolVar(&f.resetClipping, "reset-clipping", false, "Reset clipping when a file is loaded")
	fs.BoolVar(&f.skipInvalid, "skip-invalid", false, "Skip records with non-numeric coordinates")
	fs.BoolVar(&f.watch, "watch", true, "Reload the file when it changes")
	return f
}

// ConfigPath returns the explicit config path if provided via --config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.configPath
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.changed("debug") && f.debug {
		cfg.Logging.Level = "debug"
	}
	if f.changed("log-file") {
		cfg.Logging.LogFile = f.logFile
	}
	if f.changed("shading") {
		cfg.View.Shading = f.shading
	}
	if f.changed("wireframe") {
		cfg.View.ShowWireframe = f.wireframe
	}
	if f.changed("grid") {
		cfg.View.ShowGrid = f.grid
	}
	if f.changed("legend") {
		cfg.View.ShowLegend = f.legend
	}
	if f.changed("reset-clipping") {
		cfg.Scene.ResetClippingOnLoad = f.resetClipping
	}
	if f.changed("skip-invalid") {
		cfg.Scene.SkipInvalidNumbers = f.skipInvalid
	}
	if f.changed("watch") {
		cfg.Watch.Enabled = f.watch
	}
}
