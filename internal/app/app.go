// Package app implements the desktop viewer for .tri files.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/philipparndt/gonebula/internal/config"
	"github.com/philipparndt/gonebula/internal/logger"
	"github.com/philipparndt/gonebula/pkg/geometry"
	"github.com/philipparndt/gonebula/pkg/scene"
	"github.com/philipparndt/gonebula/pkg/viewer"
	"go.uber.org/zap"
)

const appID = "com.github.philipparndt.gonebula"

// App is the viewer. Everything except the loader goroutines and the
// watcher callbacks runs on the fyne main goroutine.
type App struct {
	window fyne.Window
	cfg    *config.Config
	log    *zap.Logger
	scene  *scene.Scene
	loader *scene.Loader
	view   *viewer.View

	FileWatch FileWatchState
	UI        UIState
}

// Run opens the viewer window and blocks until it is closed. A non-empty
// path is loaded right away.
func Run(cfg *config.Config, path string) error {
	opts, err := cfg.ViewerOptions(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("invalid view settings: %w", err)
	}

	sceneOpts := append(cfg.SceneOptions(), scene.WithLogger(logger.Named("scene")))
	s := scene.New(nil, sceneOpts...)

	fa := fyneapp.NewWithID(appID)
	w := fa.NewWindow("GoNebula")

	app := &App{
		window: w,
		cfg:    cfg,
		log:    logger.Named("app"),
		scene:  s,
		loader: scene.NewLoader(logger.Named("loader"), s.ParseOptions()...),
		view:   viewer.NewView(geometry.NewBoundingBox(), opts),
	}
	defer app.close()

	side := container.NewVScroll(app.buildSidePanel())
	side.SetMinSize(fyne.NewSize(320, 0))

	w.SetContent(container.NewBorder(nil, app.UI.status, nil, side, app.view))
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.SetOnDropped(app.onDropped)

	app.refresh()
	if path != "" {
		app.openInitial(path)
	}

	app.log.Info("Viewer started", zap.String("file", path))
	w.ShowAndRun()
	return nil
}

// close releases the file watcher
func (app *App) close() {
	if app.FileWatch.fileWatcher != nil {
		if err := app.FileWatch.fileWatcher.Close(); err != nil {
			app.log.Warn("Failed to close file watcher", zap.Error(err))
		}
		app.FileWatch.fileWatcher = nil
	}
}

// resetView frames the visible bounding box, or the unit cube when
// nothing is visible
func (app *App) resetView() {
	box, ok := app.scene.BoundingBox()
	if !ok {
		box = geometry.NewBoundingBox()
	}
	app.view.ResetView(box)
}

// refresh rebuilds every widget from the scene and redraws
func (app *App) refresh() {
	app.refreshMaterials()
	app.sceneChanged()
}

// sceneChanged updates what depends on visibility and clipping
func (app *App) sceneChanged() {
	app.refreshClipping()
	app.refreshStatus()
	app.view.SetFrame(viewer.FrameOf(app.scene))
}

// setOptions applies a change to the render options
func (app *App) setOptions(change func(*viewer.Options)) {
	opts := app.view.Options()
	change(&opts)
	app.view.SetOptions(opts)
}
