package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gonebula/pkg/geometry"
	"github.com/philipparndt/gonebula/pkg/material"
	"github.com/philipparndt/gonebula/pkg/tri"
)

// MaterialStats are the measurements of the triangles facing one material
type MaterialStats struct {
	ID            int
	Name          string
	Color         material.Color
	TriangleCount int
	SurfaceArea   float64
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Degenerate    int // triangles with a zero normal
}

// Report summarizes a parsed .tri document
type Report struct {
	Records       int
	Skipped       int
	Invalid       int
	TriangleCount int
	SurfaceArea   float64
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Materials     []MaterialStats
}

// Analyze measures every material of res, in discovery order
func Analyze(res *tri.Result) *Report {
	report := &Report{
		Records:     res.Records,
		Skipped:     res.Skipped,
		Invalid:     res.Invalid,
		BoundingBox: geometry.NewBoundingBox(),
		Materials:   make([]MaterialStats, 0, len(res.Materials)),
	}

	for _, id := range res.Materials {
		stats := AnalyzeGeometry(id, res.Geometry(id))
		report.Materials = append(report.Materials, stats)
		report.TriangleCount += stats.TriangleCount
		report.SurfaceArea += stats.SurfaceArea
		report.BoundingBox.Union(stats.BoundingBox)
	}
	if !report.BoundingBox.IsEmpty() {
		report.Dimensions = report.BoundingBox.Size()
	}

	return report
}

// AnalyzeGeometry measures one material buffer. g may be nil for a
// material no triangle faces.
func AnalyzeGeometry(id int, g *tri.Geometry) MaterialStats {
	info := material.Lookup(id)
	stats := MaterialStats{
		ID:          id,
		Name:        info.Name,
		Color:       info.Color,
		BoundingBox: geometry.NewBoundingBox(),
	}
	if g == nil || g.IsEmpty() {
		return stats
	}

	stats.TriangleCount = g.TriangleCount()
	stats.BoundingBox = g.BoundingBox()
	stats.Dimensions = stats.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < stats.TriangleCount; i++ {
		t := g.Triangle(i)
		stats.SurfaceArea += t.Area()
		if t.Normal.Length() == 0 {
			stats.Degenerate++
		}

		v := t.Vertices()
		for j := 0; j < 3; j++ {
			length := v[j].Distance(v[(j+1)%3])
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	stats.MinEdgeLength = minLength
	stats.MaxEdgeLength = maxLength
	stats.AvgEdgeLength = totalLength / float64(stats.TriangleCount*3)

	return stats
}

// LargestMaterials returns the count materials with the biggest surface
// area, largest first
func LargestMaterials(report *Report, count int) []MaterialStats {
	stats := make([]MaterialStats, len(report.Materials))
	copy(stats, report.Materials)

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].SurfaceArea > stats[j].SurfaceArea
	})

	if count > len(stats) {
		count = len(stats)
	}
	return stats[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
