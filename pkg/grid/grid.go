// Package grid sizes the reference grid drawn under a scene from its
// bounding box.
package grid

import (
	"math"

	"github.com/philipparndt/gonebula/pkg/geometry"
)

const (
	// SectionSize is the spacing of the major grid lines
	SectionSize = 100.0
	// CellSize is the spacing of the minor grid lines
	CellSize = 10.0
)

// Params describes a grid lying in the z=0 plane, centered on Position
type Params struct {
	Position     [3]float64
	Extent       [2]float64
	CellSize     float64
	SectionSize  float64
	FadeDistance float64
}

// Line is one grid line segment
type Line struct {
	From    geometry.Vector3
	To      geometry.Vector3
	Section bool
}

// Compute sizes the grid for box. The extent along x and y is twice the
// box extent rounded up to whole sections; z is ignored. Returns nil for
// a nil box.
func Compute(box *geometry.BoundingBox) *Params {
	if box == nil {
		return nil
	}

	sectionsX := math.Ceil((box.Max.X-box.Min.X)/SectionSize) * 2
	sectionsY := math.Ceil((box.Max.Y-box.Min.Y)/SectionSize) * 2

	extentX := sectionsX * SectionSize
	extentY := sectionsY * SectionSize

	offsetX := math.Floor(box.Min.X/SectionSize+sectionsX/4) * SectionSize
	offsetY := math.Floor(box.Min.Y/SectionSize+sectionsY/4) * SectionSize

	return &Params{
		Position:     [3]float64{offsetX, offsetY, 0},
		Extent:       [2]float64{extentX, extentY},
		CellSize:     CellSize,
		SectionSize:  SectionSize,
		FadeDistance: math.Sqrt(extentX*extentX+extentY*extentY) * 0.5,
	}
}

// Center returns the grid center as a vector
func (p *Params) Center() geometry.Vector3 {
	return geometry.NewVector3(p.Position[0], p.Position[1], p.Position[2])
}

// Lines enumerates the cell and section lines of the grid. Lines parallel
// to the y axis come first, then lines parallel to the x axis. A line on a
// section boundary is reported once, flagged as Section.
func (p *Params) Lines() []Line {
	if p == nil || p.CellSize <= 0 || p.Extent[0] <= 0 || p.Extent[1] <= 0 {
		return nil
	}

	halfX := p.Extent[0] / 2
	halfY := p.Extent[1] / 2
	cx, cy, z := p.Position[0], p.Position[1], p.Position[2]

	countX := int(math.Round(p.Extent[0] / p.CellSize))
	countY := int(math.Round(p.Extent[1] / p.CellSize))
	lines := make([]Line, 0, countX+countY+2)

	for i := 0; i <= countX; i++ {
		offset := float64(i)*p.CellSize - halfX
		x := cx + offset
		lines = append(lines, Line{
			From:    geometry.NewVector3(x, cy-halfY, z),
			To:      geometry.NewVector3(x, cy+halfY, z),
			Section: p.onSection(offset + halfX),
		})
	}
	for i := 0; i <= countY; i++ {
		offset := float64(i)*p.CellSize - halfY
		y := cy + offset
		lines = append(lines, Line{
			From:    geometry.NewVector3(cx-halfX, y, z),
			To:      geometry.NewVector3(cx+halfX, y, z),
			Section: p.onSection(offset + halfY),
		})
	}
	return lines
}

// onSection reports whether a distance from the grid edge falls on a
// section line
func (p *Params) onSection(distance float64) bool {
	if p.SectionSize <= 0 {
		return false
	}
	ratio := distance / p.SectionSize
	return math.Abs(ratio-math.Round(ratio)) < 1e-9
}
