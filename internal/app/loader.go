package app

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/philipparndt/gonebula/internal/logger"
	"github.com/philipparndt/gonebula/pkg/scene"
	"github.com/philipparndt/gonebula/pkg/tri"
	"github.com/philipparndt/gonebula/pkg/watcher"
	"go.uber.org/zap"
)

// open loads path in the background. It becomes the current, watched
// file once the load succeeds.
func (app *App) open(path string) {
	if !tri.IsTriFile(path) {
		dialog.ShowError(fmt.Errorf("%s: %w", path, tri.ErrNotTriFile), app.window)
		return
	}
	app.load(path, true)
}

// openInitial loads path synchronously before the window is shown
func (app *App) openInitial(path string) {
	if err := app.scene.LoadFile(path); err != nil {
		app.log.Error("Failed to load", zap.String("path", path), zap.Error(err))
		dialog.ShowError(err, app.window)
		return
	}

	app.window.SetTitle(fmt.Sprintf("GoNebula - %s", filepath.Base(path)))
	app.refresh()
	app.resetView()
	app.track(path)
}

// track makes path the file that is reloaded on change
func (app *App) track(path string) {
	if path == app.FileWatch.sourceFile {
		return
	}
	app.FileWatch.sourceFile = path
	if err := app.setupFileWatcher(path); err != nil {
		app.log.Warn("Auto reload disabled", zap.Error(err))
	}
}

// load parses path in the background. The result is applied on the main
// goroutine unless a newer load was started meanwhile.
func (app *App) load(path string, frame bool) {
	app.UI.status.SetText(fmt.Sprintf("Loading %s...", filepath.Base(path)))

	app.loader.Load(path, func(gen scene.Generation, path string, res *tri.Result, err error) {
		fyne.Do(func() {
			app.applyLoaded(gen, path, res, err, frame)
		})
	})
}

// applyLoaded applies a finished load (must be called on main thread)
func (app *App) applyLoaded(gen scene.Generation, path string, res *tri.Result, err error, frame bool) {
	if !app.loader.IsLatest(gen) {
		return
	}
	if err != nil {
		app.refreshStatus()
		dialog.ShowError(fmt.Errorf("failed to load %s: %w", filepath.Base(path), err), app.window)
		return
	}

	app.scene.Apply(res, path)
	app.window.SetTitle(fmt.Sprintf("GoNebula - %s", filepath.Base(path)))
	app.refresh()
	if frame {
		app.resetView()
	}
	app.track(path)

	stats := app.scene.Stats()
	app.log.Info("Loaded",
		zap.String("path", path),
		zap.Int("triangles", stats.Triangles),
		zap.Int("materials", stats.Materials),
		zap.Int("skipped", stats.Skipped),
		zap.Int("invalid", stats.Invalid))
}

// reloadModel reloads the current file keeping the camera
func (app *App) reloadModel() {
	if app.FileWatch.sourceFile == "" {
		return
	}
	app.log.Info("Reloading", zap.String("path", app.FileWatch.sourceFile))
	app.load(app.FileWatch.sourceFile, false)
}

// setupFileWatcher points the file watcher at path
func (app *App) setupFileWatcher(path string) error {
	if !app.cfg.Watch.Enabled {
		return nil
	}

	fw := app.FileWatch.fileWatcher
	if fw == nil {
		var err error
		fw, err = watcher.NewFileWatcher(app.cfg.Watch.Debounce, logger.Named("watcher"))
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		fw.Start()
		app.FileWatch.fileWatcher = fw
	} else if err := fw.RemoveAll(); err != nil {
		return fmt.Errorf("failed to stop watching: %w", err)
	}

	callback := func(changedFile string) {
		fyne.Do(app.reloadModel)
	}
	if err := fw.Watch([]string{path}, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	return nil
}
