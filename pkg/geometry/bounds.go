package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any point will extend
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Vector3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// NewBoundingBoxFromCorners creates a bounding box from explicit corners
func NewBoundingBoxFromCorners(min, max Vector3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// IsEmpty reports whether the box encloses nothing (max < min on any axis)
func (b BoundingBox) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExtendFloat32 expands the box to include every vertex of a flat xyz buffer
func (b *BoundingBox) ExtendFloat32(buf []float32) {
	for i := 0; i+2 < len(buf); i += 3 {
		b.Extend(FromFloat32(buf, i))
	}
}

// Union expands the box to enclose another box. Empty boxes are ignored.
func (b *BoundingBox) Union(other BoundingBox) {
	if other.IsEmpty() {
		return
	}
	b.Min = b.Min.Min(other.Min)
	b.Max = b.Max.Max(other.Max)
}

// ExpandByScalar grows the box by margin on every side
func (b BoundingBox) ExpandByScalar(margin float64) BoundingBox {
	if b.IsEmpty() {
		return b
	}
	m := NewVector3(margin, margin, margin)
	return BoundingBox{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Contains reports whether a point lies inside or on the box
func (b BoundingBox) Contains(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}
