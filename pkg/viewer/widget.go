package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gonebula/pkg/geometry"
)

// View is a fyne widget showing software rendered frames. Drag orbits
// the camera, scrolling zooms. All methods must run on the fyne main
// goroutine.
type View struct {
	widget.BaseWidget
	renderer  *Renderer
	frame     Frame
	image     *canvas.Image
	dragStart *fyne.Position
	width     float64
	height    float64
}

// NewView creates a view framing bbox
func NewView(bbox geometry.BoundingBox, opts Options) *View {
	v := &View{
		renderer: NewRenderer(NewCamera(bbox), opts),
		image:    canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	v.image.FillMode = canvas.ImageFillStretch
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	return &viewRenderer{view: v}
}

// SetFrame replaces what is drawn and redraws
func (v *View) SetFrame(f Frame) {
	v.frame = f
	v.redraw()
}

// Options returns the current render options
func (v *View) Options() Options {
	return v.renderer.Options
}

// SetOptions replaces the render options, keeping the widget size
func (v *View) SetOptions(opts Options) {
	v.renderer.Options = opts
	v.redraw()
}

// Camera returns the camera of the view
func (v *View) Camera() *Camera {
	return v.renderer.Camera
}

// ResetView frames bbox again
func (v *View) ResetView(bbox geometry.BoundingBox) {
	v.renderer.Camera.FitBoundingBox(bbox)
	v.redraw()
}

// redraw renders at the last laid out size
func (v *View) redraw() {
	if v.width < 1 || v.height < 1 {
		return
	}
	v.renderer.Options.Width = int(v.width)
	v.renderer.Options.Height = int(v.height)
	v.image.Image = v.renderer.Render(v.frame)
	v.image.Refresh()
}

// Dragged orbits the camera
func (v *View) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.renderer.Camera.Rotate(float64(deltaY)*0.01, float64(-deltaX)*0.01)
		v.redraw()
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd ends an orbit
func (v *View) DragEnd() {
	v.dragStart = nil
}

// Scrolled zooms the camera
func (v *View) Scrolled(event *fyne.ScrollEvent) {
	v.renderer.Camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.redraw()
}

// viewRenderer implements fyne.WidgetRenderer
type viewRenderer struct {
	view *View
}

func (r *viewRenderer) Layout(size fyne.Size) {
	r.view.image.Resize(size)
	r.view.width = float64(size.Width)
	r.view.height = float64(size.Height)
	r.view.redraw()
}

func (r *viewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *viewRenderer) Refresh() {
	r.view.redraw()
	canvas.Refresh(r.view)
}

func (r *viewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *viewRenderer) Destroy() {}
