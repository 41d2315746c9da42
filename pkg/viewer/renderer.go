package viewer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gonebula/pkg/clipping"
	"github.com/philipparndt/gonebula/pkg/geometry"
	"github.com/philipparndt/gonebula/pkg/grid"
	"github.com/philipparndt/gonebula/pkg/scene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// AxesLength is the length of the axes helper in world units
const AxesLength = 100.0

var (
	wireColor    = color.RGBA{0, 0, 0, 255}
	cellColor    = color.RGBA{0x6f, 0x6f, 0x6f, 255}
	sectionColor = color.RGBA{0x9d, 0x4b, 0x4b, 255}
	axisColors   = [3]color.RGBA{
		{0x9d, 0x4b, 0x4b, 255},
		{0x2f, 0x7f, 0x4f, 255},
		{0x3b, 0x5b, 0x9d, 255},
	}
	legendText   = color.RGBA{0xf0, 0xf0, 0xf0, 255}
	legendHidden = color.RGBA{0x80, 0x80, 0x80, 255}
	legendPanel  = color.RGBA{0x20, 0x20, 0x20, 255}
)

// Options control what a Renderer draws
type Options struct {
	Width      int
	Height     int
	Background color.Color
	Shading    Shading
	Wireframe  bool
	Grid       bool
	Axes       bool
	Legend     bool
}

// DefaultOptions returns an 800x600 phong render with nothing extra
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Background: color.RGBA{0x30, 0x30, 0x30, 255},
		Shading:    ShadingPhong,
	}
}

// Frame is everything one image is rendered from
type Frame struct {
	Items  []scene.DrawItem
	Planes []clipping.Plane
	Grid   *grid.Params
}

// FrameOf captures the current state of a scene
func FrameOf(s *scene.Scene) Frame {
	return Frame{
		Items:  s.DrawList(),
		Planes: s.Planes(),
		Grid:   s.Grid(),
	}
}

// Renderer draws frames into images with a software rasterizer
type Renderer struct {
	Camera  *Camera
	Options Options
}

// NewRenderer creates a renderer looking through camera
func NewRenderer(camera *Camera, opts Options) *Renderer {
	return &Renderer{Camera: camera, Options: opts}
}

// Render draws f. Hidden materials are skipped, front faces are shaded
// and every face is cut by the clip planes.
func (r *Renderer) Render(f Frame) *image.RGBA {
	w, h := r.Options.Width, r.Options.Height
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	bg := color.RGBA{0, 0, 0, 255}
	if r.Options.Background != nil {
		bg = rgba(r.Options.Background)
	}
	out := newFrame(w, h, bg)

	for _, item := range f.Items {
		if item.Visible {
			r.drawItem(out, item, f.Planes)
		}
	}
	if r.Options.Wireframe {
		for _, item := range f.Items {
			if item.Visible {
				r.drawWireframe(out, item, f.Planes)
			}
		}
	}
	if r.Options.Grid && f.Grid != nil {
		r.drawGrid(out, f.Grid)
	}
	if r.Options.Axes {
		r.drawAxes(out)
	}
	if r.Options.Legend {
		drawLegend(out, f.Items)
	}

	return out.img
}

// faces calls fn for every front-facing, clipped triangle of an item
func (r *Renderer) faces(item scene.DrawItem, planes []clipping.Plane, fn func(tri [3]geometry.Vector3, normal geometry.Vector3)) {
	count := item.TriangleCount()
	for i := 0; i < count; i++ {
		base := i * 9
		v1 := geometry.FromFloat32(item.Positions, base)
		v2 := geometry.FromFloat32(item.Positions, base+3)
		v3 := geometry.FromFloat32(item.Positions, base+6)
		normal := geometry.FromFloat32(item.Normals, base)

		if hasNaN(v1, v2, v3, normal) || normal.Length() == 0 {
			continue
		}
		// Back faces are culled
		if normal.Dot(r.Camera.Position.Sub(v1)) <= 0 {
			continue
		}
		for _, t := range ClipTriangle(v1, v2, v3, planes) {
			fn(t, normal)
		}
	}
}

func (r *Renderer) drawItem(out *frame, item scene.DrawItem, planes []clipping.Plane) {
	right, up, forward := r.Camera.basis()
	near := nearPlane(r.Camera.Near)

	r.faces(item, planes, func(tri [3]geometry.Vector3, normal geometry.Vector3) {
		view := []geometry.Vector3{
			r.Camera.ToView(tri[0]),
			r.Camera.ToView(tri[1]),
			r.Camera.ToView(tri[2]),
		}
		poly := clipPolygon(view, near)
		if poly == nil {
			return
		}

		viewNormal := geometry.NewVector3(normal.Dot(right), normal.Dot(up), normal.Dot(forward))
		centroid := view[0].Add(view[1]).Add(view[2]).Mul(1.0 / 3)
		col := shade(item.Color, viewNormal, centroid.Negate().Normalize(), r.Options.Shading)

		for _, t := range fan(poly) {
			out.fillTriangle(r.project(out, t[0]), r.project(out, t[1]), r.project(out, t[2]), col)
		}
	})
}

func (r *Renderer) drawWireframe(out *frame, item scene.DrawItem, planes []clipping.Plane) {
	bias := r.Camera.Distance * 1e-3
	r.faces(item, planes, func(tri [3]geometry.Vector3, _ geometry.Vector3) {
		for i := 0; i < 3; i++ {
			r.drawSegment(out, tri[i], tri[(i+1)%3], wireColor, 1, bias)
		}
	})
}

// gridPieces is how many pieces a grid line is split into for the fade
const gridPieces = 24

func (r *Renderer) drawGrid(out *frame, p *grid.Params) {
	showCells := r.gridSpacing(out, p, p.CellSize) >= 1
	for _, line := range p.Lines() {
		col := cellColor
		if line.Section {
			col = sectionColor
		} else if !showCells {
			continue
		}

		for i := 0; i < gridPieces; i++ {
			a := line.From.Lerp(line.To, float64(i)/gridPieces)
			b := line.From.Lerp(line.To, float64(i+1)/gridPieces)

			alpha := 1.0
			if p.FadeDistance > 0 {
				d := a.Lerp(b, 0.5).Distance(r.Camera.Position)
				alpha = 1 - math.Min(1, d/(p.FadeDistance+r.Camera.Distance))
			}
			if alpha <= 0 {
				continue
			}
			r.drawSegment(out, a, b, col, alpha*0.8, 0)
		}
	}
}

// gridSpacing returns the largest on-screen distance in pixels between
// grid lines step apart, measured at the grid point nearest the camera
func (r *Renderer) gridSpacing(out *frame, p *grid.Params, step float64) float64 {
	center := p.Center()
	halfX, halfY := p.Extent[0]/2, p.Extent[1]/2
	nearest := geometry.NewVector3(
		math.Max(center.X-halfX, math.Min(center.X+halfX, r.Camera.Position.X)),
		math.Max(center.Y-halfY, math.Min(center.Y+halfY, r.Camera.Position.Y)),
		center.Z,
	)
	depth := math.Max(r.Camera.Near, nearest.Distance(r.Camera.Position))
	focal := float64(out.height()) / 2 / math.Tan(r.Camera.FOV/2)
	return step * focal / depth
}

func (r *Renderer) drawAxes(out *frame) {
	face := basicfont.Face7x13
	for i, axis := range clipping.Axes {
		end := axis.Unit().Mul(AxesLength)
		r.drawSegment(out, geometry.Vector3{}, end, axisColors[i], 1, 0)

		v := r.Camera.ToView(end)
		if v.Z <= r.Camera.Near {
			continue
		}
		p := r.project(out, end)
		drawText(out, face, int(p.x)+3, int(p.y)-3, axis.String(), axisColors[i])
	}
}

// drawSegment draws a world space segment cut at the near plane
func (r *Renderer) drawSegment(out *frame, a, b geometry.Vector3, col color.RGBA, alpha, bias float64) {
	va, vb, ok := clipSegment(r.Camera.ToView(a), r.Camera.ToView(b), nearPlane(r.Camera.Near))
	if !ok {
		return
	}
	out.drawLine(r.projectView(out, va), r.projectView(out, vb), col, alpha, bias)
}

func (r *Renderer) project(out *frame, v geometry.Vector3) point {
	return r.projectView(out, r.Camera.ToView(v))
}

// projectView maps a camera space vertex to screen space of out
func (r *Renderer) projectView(out *frame, v geometry.Vector3) point {
	x, y, z := r.Camera.ProjectView(v, float64(out.width()), float64(out.height()))
	return point{x, y, z}
}

func drawLegend(out *frame, items []scene.DrawItem) {
	face := basicfont.Face7x13
	const (
		pad    = 6
		line   = 16
		swatch = 10
	)

	labels := make([]string, len(items))
	widest := 0
	for i, item := range items {
		labels[i] = fmt.Sprintf("%s (%d)", item.Name, item.ID)
		widest = max(widest, font.MeasureString(face, labels[i]).Ceil())
	}
	if len(items) == 0 {
		labels = []string{"No materials loaded"}
		widest = font.MeasureString(face, labels[0]).Ceil()
	}

	panel := image.Rect(0, 0, pad*3+swatch+widest, pad*2+line*len(labels))
	out.fillRect(panel, legendPanel)

	if len(items) == 0 {
		drawText(out, face, pad, pad+face.Ascent, labels[0], legendText)
		return
	}
	for i, item := range items {
		y := pad + i*line
		text := legendText
		if !item.Visible {
			text = legendHidden
		}
		out.fillRect(image.Rect(pad, y+1, pad+swatch, y+1+swatch), rgba(item.Color))
		drawText(out, face, pad*2+swatch, y+face.Ascent-1, labels[i], text)
	}
}

func drawText(out *frame, face *basicfont.Face, x, y int, text string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  out.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func hasNaN(vs ...geometry.Vector3) bool {
	for _, v := range vs {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			return true
		}
	}
	return false
}
