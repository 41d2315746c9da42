package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gonebula/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestFitBoundingBox(t *testing.T) {
	bbox := geometry.NewBoundingBoxFromCorners(
		geometry.NewVector3(-1, -1, -1),
		geometry.NewVector3(1, 1, 1),
	)
	c := NewCamera(bbox)

	want := 1 / math.Tan(22.5*math.Pi/180)
	assert.InDelta(t, want, c.Distance, 1e-9)
	assert.InDelta(t, want/100, c.Near, 1e-9)
	assert.InDelta(t, want*100, c.Far, 1e-9)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), c.Target)
	assert.InDelta(t, want, c.Position.Z, 1e-9)
	assert.InDelta(t, 0, c.Position.X, 1e-9)
}

func TestFitUsesLargestDimension(t *testing.T) {
	bbox := geometry.NewBoundingBoxFromCorners(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(10, 2, 4),
	)
	c := NewCamera(bbox)

	assert.InDelta(t, 5/math.Tan(22.5*math.Pi/180), c.Distance, 1e-9)
	assert.Equal(t, geometry.NewVector3(5, 1, 2), c.Target)
}

func TestFitEmptyBox(t *testing.T) {
	c := NewCamera(geometry.NewBoundingBox())

	assert.Greater(t, c.Distance, 0.0)
	assert.False(t, math.IsNaN(c.Position.Z))
}

func TestRotateClampsElevation(t *testing.T) {
	c := NewCamera(geometry.NewBoundingBoxFromCorners(
		geometry.NewVector3(-1, -1, -1),
		geometry.NewVector3(1, 1, 1),
	))
	c.Rotate(10, 0)

	assert.Less(t, c.RotationX, math.Pi/2)
	assert.InDelta(t, c.Distance, c.Position.Distance(c.Target), 1e-9)
}

func TestProjectCenter(t *testing.T) {
	c := NewCamera(geometry.NewBoundingBoxFromCorners(
		geometry.NewVector3(-1, -1, -1),
		geometry.NewVector3(1, 1, 1),
	))

	x, y, z := c.Project(c.Target, 200, 100)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
	assert.InDelta(t, c.Distance, z, 1e-9)

	// +y is up on screen
	_, yUp, _ := c.Project(geometry.NewVector3(0, 1, 0), 200, 100)
	assert.Less(t, yUp, 50.0)
}
