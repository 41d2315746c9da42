package tri

import (
	"github.com/philipparndt/gonebula/pkg/geometry"
)

// Geometry holds the flat vertex buffers of one material.
// Positions and Normals carry 3 floats per vertex and 3 vertices per
// triangle, in parse order. Normals are per face, repeated for each vertex.
type Geometry struct {
	Positions []float32
	Normals   []float32
}

// NewGeometry creates an empty geometry buffer
func NewGeometry() *Geometry {
	return &Geometry{
		Positions: make([]float32, 0),
		Normals:   make([]float32, 0),
	}
}

// AddTriangle appends a triangle and its face normal to the buffers
func (g *Geometry) AddTriangle(t geometry.Triangle) {
	g.Positions = t.V1.AppendFloat32(g.Positions)
	g.Positions = t.V2.AppendFloat32(g.Positions)
	g.Positions = t.V3.AppendFloat32(g.Positions)
	for i := 0; i < 3; i++ {
		g.Normals = t.Normal.AppendFloat32(g.Normals)
	}
}

// Triangle returns the i-th triangle of the buffer
func (g *Geometry) Triangle(i int) geometry.Triangle {
	base := i * 9
	return geometry.NewTriangle(
		geometry.FromFloat32(g.Normals, base),
		geometry.FromFloat32(g.Positions, base),
		geometry.FromFloat32(g.Positions, base+3),
		geometry.FromFloat32(g.Positions, base+6),
	)
}

// VertexCount returns the number of vertices
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of triangles
func (g *Geometry) TriangleCount() int {
	return len(g.Positions) / 9
}

// IsEmpty returns true if the geometry has no triangles
func (g *Geometry) IsEmpty() bool {
	return len(g.Positions) == 0
}

// BoundingBox calculates the bounding box of all vertices
func (g *Geometry) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	bbox.ExtendFloat32(g.Positions)
	return bbox
}

// Result is the outcome of parsing one .tri document
type Result struct {
	// Geometries maps a material id to the triangles seen from inside it
	Geometries map[int]*Geometry
	// Materials lists every material id in order of first appearance
	Materials []int

	Records int // valid 11-token records
	Skipped int // lines without exactly 11 tokens
	Invalid int // 11-token records rejected by the number policy

	seen map[int]struct{}
}

// NewResult creates an empty parse result
func NewResult() *Result {
	return &Result{
		Geometries: make(map[int]*Geometry),
		Materials:  make([]int, 0),
		seen:       make(map[int]struct{}),
	}
}

// IsEmpty reports whether no valid record was parsed
func (r *Result) IsEmpty() bool {
	return len(r.Geometries) == 0
}

// TriangleCount returns the number of triangles across all materials
func (r *Result) TriangleCount() int {
	total := 0
	for _, g := range r.Geometries {
		total += g.TriangleCount()
	}
	return total
}

// Geometry returns the buffer of a material, or nil when the material has
// no triangles facing it
func (r *Result) Geometry(id int) *Geometry {
	return r.Geometries[id]
}

func (r *Result) registerMaterial(id int) {
	if _, ok := r.seen[id]; ok {
		return
	}
	r.seen[id] = struct{}{}
	r.Materials = append(r.Materials, id)
}

func (r *Result) geometryFor(id int) *Geometry {
	g, ok := r.Geometries[id]
	if !ok {
		g = NewGeometry()
		r.Geometries[id] = g
	}
	return g
}
