package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewFace(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := NewFace(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	if tri.Normal != NewVector3(0, 0, 1) {
		t.Errorf("Normal failed: expected (0,0,1), got %v", tri.Normal)
	}
}

func TestTriangleDegenerateNormal(t *testing.T) {
	tri := NewFace(
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)

	if tri.Normal != (Vector3{}) {
		t.Errorf("collinear triangle: expected zero normal, got %v", tri.Normal)
	}
}

func TestTriangleFlipped(t *testing.T) {
	tri := NewFace(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)
	flipped := tri.Flipped()

	if flipped.V1 != tri.V1 || flipped.V2 != tri.V3 || flipped.V3 != tri.V2 {
		t.Errorf("Flipped winding failed: got %v", flipped.Vertices())
	}
	if flipped.Normal != tri.Normal.Negate() {
		t.Errorf("Flipped normal failed: got %v", flipped.Normal)
	}
	// Recomputing from the swapped winding agrees with the negated normal
	if flipped.CalculateNormal() != flipped.Normal {
		t.Errorf("Flipped normal disagrees with winding: %v vs %v", flipped.CalculateNormal(), flipped.Normal)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewFace(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
