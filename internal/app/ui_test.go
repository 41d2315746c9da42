package app

import (
	"testing"

	"github.com/philipparndt/gonebula/pkg/clipping"
	"github.com/philipparndt/gonebula/pkg/material"
	"github.com/philipparndt/gonebula/pkg/scene"
	"github.com/stretchr/testify/assert"
)

func TestMaterialLabel(t *testing.T) {
	assert.Equal(t, "Material 3 (3)", materialLabel(material.NewRecord(3)))
	assert.Equal(t, "Vacuum (-123)", materialLabel(material.NewRecord(-123)))
}

func TestSliderLabel(t *testing.T) {
	assert.Equal(t, "x = 1.25", sliderLabel(clipping.X, 1.25))
	assert.Equal(t, "z = -0.10", sliderLabel(clipping.Z, -0.1))
}

func TestStatusText(t *testing.T) {
	stats := scene.Stats{Source: "/tmp/part.tri", Triangles: 4, Materials: 3, VisibleMaterials: 2}
	assert.Equal(t, "part.tri: 4 triangles, 2 of 3 materials visible", statusText(stats))

	stats.Invalid = 1
	assert.Equal(t, "part.tri: 4 triangles, 2 of 3 materials visible, 1 invalid records", statusText(stats))
}

func TestMoveHandle(t *testing.T) {
	r := clipping.Range{Min: -1, Max: 1}

	tests := []struct {
		name  string
		value float64
		isMin bool
		want  clipping.Range
	}{
		{"min inside", 0.5, true, clipping.Range{Min: 0.5, Max: 1}},
		{"min past max", 2, true, clipping.Range{Min: 1, Max: 1}},
		{"max inside", -0.5, false, clipping.Range{Min: -1, Max: -0.5}},
		{"max past min", -3, false, clipping.Range{Min: -1, Max: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moveHandle(r, tt.value, tt.isMin))
		})
	}
}

func TestClamp(t *testing.T) {
	bounds := clipping.Range{Min: -2, Max: 2}
	assert.Equal(t, -2.0, clamp(-5, bounds))
	assert.Equal(t, 2.0, clamp(5, bounds))
	assert.Equal(t, 0.5, clamp(0.5, bounds))
}
