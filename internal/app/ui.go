package app

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gonebula/pkg/clipping"
	"github.com/philipparndt/gonebula/pkg/material"
	"github.com/philipparndt/gonebula/pkg/scene"
	"github.com/philipparndt/gonebula/pkg/tri"
	"github.com/philipparndt/gonebula/pkg/viewer"
	"go.uber.org/zap"
)

const (
	noMaterialsText = "No materials loaded"
	noFileText      = "Drop a .tri file or use Load file"
	sliderStep      = 0.1
	swatchSize      = 20
)

// buildSidePanel creates the controls next to the view
func (app *App) buildSidePanel() fyne.CanvasObject {
	opts := app.view.Options()

	openButton := widget.NewButtonWithIcon("Load file", theme.FolderOpenIcon(), app.showFileDialog)
	resetButton := widget.NewButtonWithIcon("Reset View", theme.ViewRestoreIcon(), app.resetView)

	wireframeCheck := widget.NewCheck("Wireframe", func(on bool) {
		app.setOptions(func(o *viewer.Options) { o.Wireframe = on })
	})
	wireframeCheck.Checked = opts.Wireframe

	gridCheck := widget.NewCheck("Grid and axes", func(on bool) {
		app.setOptions(func(o *viewer.Options) {
			o.Grid = on
			o.Axes = on
		})
	})
	gridCheck.Checked = opts.Grid

	legendCheck := widget.NewCheck("Legend", func(on bool) {
		app.setOptions(func(o *viewer.Options) { o.Legend = on })
	})
	legendCheck.Checked = opts.Legend

	shadingRadio := widget.NewRadioGroup(
		[]string{viewer.ShadingPhong.String(), viewer.ShadingEnvMap.String()},
		func(selected string) {
			shading, err := viewer.ParseShading(selected)
			if err != nil {
				return
			}
			app.setOptions(func(o *viewer.Options) { o.Shading = shading })
		})
	shadingRadio.Horizontal = true
	shadingRadio.Required = true
	shadingRadio.Selected = opts.Shading.String()

	app.UI.materials = container.NewVBox()
	app.UI.status = widget.NewLabel(noFileText)

	clippingBox := container.NewVBox()
	for _, axis := range clipping.Axes {
		clippingBox.Add(app.newAxisControls(axis))
	}

	return container.NewVBox(
		container.NewGridWithColumns(2, openButton, resetButton),
		widget.NewSeparator(),
		heading("Display"),
		wireframeCheck,
		gridCheck,
		legendCheck,
		shadingRadio,
		widget.NewSeparator(),
		heading("Materials"),
		app.UI.materials,
		widget.NewSeparator(),
		heading("Clipping"),
		clippingBox,
	)
}

func heading(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// newAxisControls creates the switch and the range sliders of one axis
func (app *App) newAxisControls(axis clipping.Axis) fyne.CanvasObject {
	c := &app.UI.clipping[axis]

	c.enabled = widget.NewCheck(fmt.Sprintf("%s Clipping Range", strings.ToUpper(axis.String())), func(on bool) {
		if on == app.scene.Clipping().Axis(axis).Enabled() {
			return
		}
		app.scene.SetClippingEnabled(axis, on)
		app.sceneChanged()
	})
	c.min = app.newRangeSlider(axis, true)
	c.max = app.newRangeSlider(axis, false)
	c.minLabel = widget.NewLabel(sliderLabel(axis, 0))
	c.maxLabel = widget.NewLabel(sliderLabel(axis, 0))

	return container.NewVBox(
		c.enabled,
		container.NewBorder(nil, nil, c.minLabel, nil, c.min),
		container.NewBorder(nil, nil, c.maxLabel, nil, c.max),
	)
}

// newRangeSlider creates the slider moving one end of an axis range
func (app *App) newRangeSlider(axis clipping.Axis, isMin bool) *widget.Slider {
	s := widget.NewSlider(-10, 10)
	s.Step = sliderStep
	s.OnChanged = func(value float64) {
		st := app.scene.Clipping().Axis(axis)
		if !st.Enabled() {
			return
		}
		r := moveHandle(st.Range, value, isMin)
		if r == st.Range {
			return
		}
		app.scene.SetClippingRange(axis, r)
		app.sceneChanged()
	}
	s.Disable()
	return s
}

// refreshClipping mirrors the clipping state into the axis controls
func (app *App) refreshClipping() {
	clip := app.scene.Clipping()
	for _, axis := range clipping.Axes {
		st := clip.Axis(axis)
		bounds := clip.SliderBounds(axis)
		c := &app.UI.clipping[axis]

		c.enabled.Checked = st.Enabled()
		c.enabled.Refresh()

		setSlider(c.min, bounds, st.Range.Min, st.Enabled())
		setSlider(c.max, bounds, st.Range.Max, st.Enabled())
		c.minLabel.SetText(sliderLabel(axis, st.Range.Min))
		c.maxLabel.SetText(sliderLabel(axis, st.Range.Max))
	}
}

// setSlider moves a slider without firing OnChanged
func setSlider(s *widget.Slider, bounds clipping.Range, value float64, enabled bool) {
	s.Min = bounds.Min
	s.Max = bounds.Max
	s.Value = clamp(value, bounds)
	if enabled {
		s.Enable()
	} else {
		s.Disable()
	}
	s.Refresh()
}

// refreshMaterials rebuilds the material list
func (app *App) refreshMaterials() {
	records := app.scene.Materials()
	if len(records) == 0 {
		app.UI.materials.Objects = []fyne.CanvasObject{widget.NewLabel(noMaterialsText)}
		app.UI.materials.Refresh()
		return
	}

	rows := make([]fyne.CanvasObject, 0, len(records))
	for _, rec := range records {
		id := rec.ID
		check := widget.NewCheck("", func(visible bool) {
			app.scene.SetVisible(id, visible)
			app.sceneChanged()
		})
		check.Checked = rec.Visible

		rows = append(rows, container.NewHBox(check, newSwatch(rec.Color), widget.NewLabel(materialLabel(rec))))
	}
	app.UI.materials.Objects = rows
	app.UI.materials.Refresh()
}

func newSwatch(c color.Color) *canvas.Rectangle {
	swatch := canvas.NewRectangle(c)
	swatch.StrokeColor = color.Black
	swatch.StrokeWidth = 1
	swatch.SetMinSize(fyne.NewSize(swatchSize, swatchSize))
	return swatch
}

// refreshStatus shows what is loaded in the status line
func (app *App) refreshStatus() {
	if app.scene.Source() == "" {
		app.UI.status.SetText(noFileText)
		return
	}
	app.UI.status.SetText(statusText(app.scene.Stats()))
}

// showFileDialog opens a file dialog limited to .tri files
func (app *App) showFileDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if err := reader.Close(); err != nil {
			app.log.Warn("Failed to close file", zap.String("path", path), zap.Error(err))
		}
		app.open(path)
	}, app.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".tri"}))
	fd.Show()
}

// onDropped opens the first dropped .tri file
func (app *App) onDropped(_ fyne.Position, uris []fyne.URI) {
	for _, u := range uris {
		if tri.IsTriFile(u.Path()) {
			app.open(u.Path())
			return
		}
	}
	app.log.Warn("No .tri file among dropped items", zap.Int("count", len(uris)))
}

func materialLabel(rec material.Record) string {
	return fmt.Sprintf("%s (%d)", rec.Name, rec.ID)
}

func sliderLabel(axis clipping.Axis, value float64) string {
	return fmt.Sprintf("%s = %.2f", axis, value)
}

func statusText(stats scene.Stats) string {
	text := fmt.Sprintf("%s: %d triangles, %d of %d materials visible",
		filepath.Base(stats.Source), stats.Triangles, stats.VisibleMaterials, stats.Materials)
	if stats.Invalid > 0 {
		text += fmt.Sprintf(", %d invalid records", stats.Invalid)
	}
	return text
}

// moveHandle moves one end of r to value without letting the ends cross
func moveHandle(r clipping.Range, value float64, isMin bool) clipping.Range {
	if isMin {
		if value > r.Max {
			value = r.Max
		}
		r.Min = value
		return r
	}
	if value < r.Min {
		value = r.Min
	}
	r.Max = value
	return r
}

func clamp(value float64, bounds clipping.Range) float64 {
	if value < bounds.Min {
		return bounds.Min
	}
	if value > bounds.Max {
		return bounds.Max
	}
	return value
}
