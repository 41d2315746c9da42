package clipping

import (
	"fmt"

	"github.com/philipparndt/gonebula/pkg/geometry"
)

// Plane is a half-space boundary. Points with Normal·p + Constant >= 0
// are kept, the rest is clipped away.
type Plane struct {
	Normal   geometry.Vector3
	Constant float64
}

// DistanceToPoint returns the signed distance of p to the plane
func (p Plane) DistanceToPoint(point geometry.Vector3) float64 {
	return p.Normal.Dot(point) + p.Constant
}

// Keeps reports whether a point lies on the kept side of the plane
func (p Plane) Keeps(point geometry.Vector3) bool {
	return p.DistanceToPoint(point) >= 0
}

// String formats the plane as n·p + c >= 0
func (p Plane) String() string {
	return fmt.Sprintf("(%g, %g, %g)·p + %g >= 0", p.Normal.X, p.Normal.Y, p.Normal.Z, p.Constant)
}

// minPlane keeps the region coordinate >= min
func minPlane(axis Axis, min float64) Plane {
	return Plane{Normal: axis.Unit(), Constant: -min}
}

// maxPlane keeps the region coordinate <= max
func maxPlane(axis Axis, max float64) Plane {
	return Plane{Normal: axis.Unit().Negate(), Constant: max}
}

// KeepsAll reports whether a point lies on the kept side of every plane
func KeepsAll(planes []Plane, point geometry.Vector3) bool {
	for _, p := range planes {
		if !p.Keeps(point) {
			return false
		}
	}
	return true
}
