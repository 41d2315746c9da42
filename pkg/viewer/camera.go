package viewer

import (
	"math"

	"github.com/philipparndt/gonebula/pkg/geometry"
)

// DefaultFOV is the vertical field of view in degrees
const DefaultFOV = 45.0

// Camera is a perspective orbit camera looking at Target
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Distance  float64
	Near      float64
	Far       float64
	RotationX float64 // Elevation
	RotationY float64 // Azimuth
}

// NewCamera creates a camera framing bbox
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Up:  geometry.NewVector3(0, 1, 0),
		FOV: DefaultFOV * math.Pi / 180,
	}
	c.FitBoundingBox(bbox)
	return c
}

// FitBoundingBox resets the view: the camera looks down -z at the box
// center from the distance at which the largest box dimension fills the
// field of view. An empty box frames the unit cube around the origin.
func (c *Camera) FitBoundingBox(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		bbox = geometry.NewBoundingBoxFromCorners(
			geometry.NewVector3(-1, -1, -1),
			geometry.NewVector3(1, 1, 1),
		)
	}

	maxDim := bbox.Size().MaxComponent()
	distance := math.Abs(maxDim / 2 / math.Tan(c.FOV/2))
	if distance == 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		distance = 1
	}

	c.Target = bbox.Center()
	c.Distance = distance
	c.Near = distance / 100
	c.Far = distance * 100
	c.RotationX = 0
	c.RotationY = 0
	c.UpdatePosition()
}

// UpdatePosition places the camera on its orbit around Target
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits the camera by the given angles in radians
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Stay off the poles so Up never lines up with the view direction
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))

	c.UpdatePosition()
}

// Zoom scales the orbit distance by 1+delta
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < c.Near {
		c.Distance = c.Near
	}
	c.UpdatePosition()
}

// basis returns the right, up and forward vectors of the view
func (c *Camera) basis() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// ToView transforms a world point into camera space, z pointing forward
func (c *Camera) ToView(point geometry.Vector3) geometry.Vector3 {
	right, up, forward := c.basis()
	relative := point.Sub(c.Position)
	return geometry.NewVector3(relative.Dot(right), relative.Dot(up), relative.Dot(forward))
}

// ProjectView maps a camera space point to screen coordinates. The third
// value is the view depth.
func (c *Camera) ProjectView(v geometry.Vector3, width, height float64) (float64, float64, float64) {
	z := v.Z
	if z <= 1e-9 {
		z = 1e-9
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (v.X/(z*fovScale*aspect))*(width/2) + width/2
	screenY := (-v.Y/(z*fovScale))*(height/2) + height/2

	return screenX, screenY, z
}

// Project maps a world point to screen coordinates and view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	return c.ProjectView(c.ToView(point), width, height)
}
