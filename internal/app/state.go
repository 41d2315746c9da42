package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gonebula/pkg/watcher"
)

// FileWatchState holds auto reload state
type FileWatchState struct {
	sourceFile  string
	fileWatcher *watcher.FileWatcher
}

// AxisControls holds the widgets of one clipping axis
type AxisControls struct {
	enabled  *widget.Check
	min      *widget.Slider
	max      *widget.Slider
	minLabel *widget.Label
	maxLabel *widget.Label
}

// UIState holds the widgets refreshed after scene changes
type UIState struct {
	materials *fyne.Container
	clipping  [3]AxisControls
	status    *widget.Label
}
