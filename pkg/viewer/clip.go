package viewer

import (
	"github.com/philipparndt/gonebula/pkg/clipping"
	"github.com/philipparndt/gonebula/pkg/geometry"
)

// halfSpace is anything that assigns a signed distance to a point; the
// side with distance >= 0 is kept
type halfSpace interface {
	DistanceToPoint(p geometry.Vector3) float64
}

// nearPlane keeps camera space points in front of the near distance
type nearPlane float64

func (n nearPlane) DistanceToPoint(p geometry.Vector3) float64 {
	return p.Z - float64(n)
}

// clipPolygon cuts a convex polygon against one half-space. The result is
// empty when the polygon lies entirely on the clipped side.
func clipPolygon(poly []geometry.Vector3, plane halfSpace) []geometry.Vector3 {
	if len(poly) == 0 {
		return nil
	}

	out := make([]geometry.Vector3, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevDist := plane.DistanceToPoint(prev)

	for _, cur := range poly {
		curDist := plane.DistanceToPoint(cur)
		switch {
		case curDist >= 0 && prevDist >= 0:
			out = append(out, cur)
		case curDist >= 0:
			// Entering the kept side
			out = append(out, prev.Lerp(cur, prevDist/(prevDist-curDist)), cur)
		case prevDist >= 0:
			// Leaving the kept side
			out = append(out, prev.Lerp(cur, prevDist/(prevDist-curDist)))
		}
		prev, prevDist = cur, curDist
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// ClipTriangle cuts a triangle against every plane and returns what is
// left as a fan of triangles, in the winding of the input.
func ClipTriangle(v1, v2, v3 geometry.Vector3, planes []clipping.Plane) [][3]geometry.Vector3 {
	poly := []geometry.Vector3{v1, v2, v3}
	for _, p := range planes {
		poly = clipPolygon(poly, p)
		if poly == nil {
			return nil
		}
	}
	return fan(poly)
}

// fan splits a convex polygon into triangles sharing its first vertex
func fan(poly []geometry.Vector3) [][3]geometry.Vector3 {
	if len(poly) < 3 {
		return nil
	}
	tris := make([][3]geometry.Vector3, 0, len(poly)-2)
	for i := 1; i+1 < len(poly); i++ {
		tris = append(tris, [3]geometry.Vector3{poly[0], poly[i], poly[i+1]})
	}
	return tris
}

// clipSegment cuts a line segment against a half-space
func clipSegment(a, b geometry.Vector3, plane halfSpace) (geometry.Vector3, geometry.Vector3, bool) {
	da := plane.DistanceToPoint(a)
	db := plane.DistanceToPoint(b)
	switch {
	case da >= 0 && db >= 0:
		return a, b, true
	case da < 0 && db < 0:
		return a, b, false
	case da < 0:
		return a.Lerp(b, da/(da-db)), b, true
	default:
		return a, a.Lerp(b, da/(da-db)), true
	}
}
