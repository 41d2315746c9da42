package viewer

import (
	"image"
	"image/color"
	"math"
)

// point is a projected vertex: screen x, y and view depth
type point struct {
	x, y, z float64
}

// frame is a color image with a depth buffer
type frame struct {
	img   *image.RGBA
	depth []float64
}

func newFrame(width, height int, background color.RGBA) *frame {
	f := &frame{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float64, width*height),
	}
	for i := range f.depth {
		f.depth[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.img.SetRGBA(x, y, background)
		}
	}
	return f
}

func (f *frame) width() int {
	return f.img.Bounds().Dx()
}

func (f *frame) height() int {
	return f.img.Bounds().Dy()
}

// plot writes col at (x, y) if z passes the depth test. Opaque writes
// update the depth buffer; translucent ones are blended over.
func (f *frame) plot(x, y int, z float64, col color.RGBA, alpha float64) {
	if x < 0 || y < 0 || x >= f.width() || y >= f.height() {
		return
	}
	idx := y*f.width() + x
	if z >= f.depth[idx] {
		return
	}
	if alpha >= 1 {
		f.depth[idx] = z
		f.img.SetRGBA(x, y, col)
		return
	}
	if alpha <= 0 {
		return
	}
	dst := f.img.RGBAAt(x, y)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-alpha) + float64(b)*alpha + 0.5)
	}
	f.img.SetRGBA(x, y, color.RGBA{mix(dst.R, col.R), mix(dst.G, col.G), mix(dst.B, col.B), 255})
}

// fillTriangle scan-converts a triangle with depth interpolation
func (f *frame) fillTriangle(a, b, c point, col color.RGBA) {
	// Sort vertices by y
	if a.y > b.y {
		a, b = b, a
	}
	if b.y > c.y {
		b, c = c, b
	}
	if a.y > b.y {
		a, b = b, a
	}

	edges := [3][2]point{{a, b}, {b, c}, {a, c}}

	yStart := int(math.Max(0, math.Ceil(a.y-0.5)))
	yEnd := int(math.Min(float64(f.height()-1), math.Floor(c.y)))

	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)

		var xs, zs [2]float64
		n := 0
		for _, e := range edges {
			p, q := e[0], e[1]
			if p.y == q.y || fy < p.y || fy > q.y || n == 2 {
				continue
			}
			t := (fy - p.y) / (q.y - p.y)
			xs[n] = p.x + t*(q.x-p.x)
			zs[n] = p.z + t*(q.z-p.z)
			n++
		}
		if n < 2 {
			continue
		}
		if xs[0] > xs[1] {
			xs[0], xs[1] = xs[1], xs[0]
			zs[0], zs[1] = zs[1], zs[0]
		}

		xFrom := int(math.Max(0, math.Round(xs[0])))
		xTo := int(math.Min(float64(f.width()-1), math.Round(xs[1])))
		for x := xFrom; x <= xTo; x++ {
			t := 0.0
			if xs[1] != xs[0] {
				t = (float64(x) - xs[0]) / (xs[1] - xs[0])
			}
			f.plot(x, y, zs[0]+t*(zs[1]-zs[0]), col, 1)
		}
	}
}

// drawLine draws a depth-tested line with Bresenham's algorithm. bias is
// subtracted from the depth so lines win against coplanar faces.
func (f *frame) drawLine(a, b point, col color.RGBA, alpha, bias float64) {
	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		f.plot(x1, y1, a.z+t*(b.z-a.z)-bias, col, alpha)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillRect paints an unshaded overlay rectangle
func (f *frame) fillRect(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(f.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f.img.SetRGBA(x, y, col)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
