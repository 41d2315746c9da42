package clipping

import (
	"testing"

	"github.com/philipparndt/gonebula/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) geometry.BoundingBox {
	return geometry.NewBoundingBoxFromCorners(
		geometry.NewVector3(minX, minY, minZ),
		geometry.NewVector3(maxX, maxY, maxZ),
	)
}

func TestNewState(t *testing.T) {
	s := NewState()

	for _, a := range Axes {
		st := s.Axis(a)
		assert.False(t, st.Enabled(), "axis %s", a)
		assert.Equal(t, Range{}, st.Range, "axis %s", a)
	}
	_, ok := s.BoundingBox()
	assert.False(t, ok)
	assert.Empty(t, s.Planes())
}

func TestNoPlanesWithoutBoundingBox(t *testing.T) {
	s := NewState()
	s.SetEnabled(X, true)
	s.SetRange(X, Range{Min: 0, Max: 1})

	assert.Empty(t, s.Planes())
}

func TestIngestFollowsBoxWhenDisabled(t *testing.T) {
	s := NewState()
	b := box(-1, -2, -3, 1, 2, 3)
	s.IngestBoundingBox(b)

	assert.Empty(t, s.Planes())
	assert.Equal(t, Range{Min: -1, Max: 1}, s.Axis(X).Range)
	assert.Equal(t, Range{Min: -2, Max: 2}, s.Axis(Y).Range)
	assert.Equal(t, Range{Min: -3, Max: 3}, s.Axis(Z).Range)

	got, ok := s.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, b, got)
}

func TestFixedAxisIgnoresNewBox(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(-1, -1, -1, 1, 1, 1))

	s.SetEnabled(X, true)
	s.SetRange(X, Range{Min: -0.5, Max: 0.25})

	s.IngestBoundingBox(box(-10, -20, -30, 10, 20, 30))

	assert.Equal(t, Range{Min: -0.5, Max: 0.25}, s.Axis(X).Range)
	assert.Equal(t, Range{Min: -20, Max: 20}, s.Axis(Y).Range)
	assert.Equal(t, Range{Min: -30, Max: 30}, s.Axis(Z).Range)
}

func TestEnableFreezesCurrentRange(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(0, 0, 0, 4, 4, 4))
	s.SetEnabled(Z, true)
	s.IngestBoundingBox(box(0, 0, 0, 8, 8, 8))

	assert.Equal(t, Range{Min: 0, Max: 4}, s.Axis(Z).Range)
}

func TestDisableSnapsBackToBox(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(0, 0, 0, 4, 4, 4))
	s.SetEnabled(Y, true)
	s.SetRange(Y, Range{Min: 1, Max: 2})

	s.SetEnabled(Y, false)
	assert.Equal(t, Range{Min: 0, Max: 4}, s.Axis(Y).Range)
	assert.Empty(t, s.Planes())
}

func TestPlanesOrderAndCount(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(-5, -5, -5, 5, 5, 5))

	assert.Len(t, s.Planes(), 0)

	s.SetEnabled(Z, true)
	s.SetRange(Z, Range{Min: -1, Max: 2})
	assert.Len(t, s.Planes(), 2)

	s.SetEnabled(X, true)
	s.SetRange(X, Range{Min: -3, Max: 4})
	assert.Len(t, s.Planes(), 4)

	s.SetEnabled(Y, true)
	planes := s.Planes()
	require.Len(t, planes, 6)

	expected := []Plane{
		{Normal: geometry.NewVector3(1, 0, 0), Constant: 3},
		{Normal: geometry.NewVector3(-1, 0, 0), Constant: 4},
		{Normal: geometry.NewVector3(0, 1, 0), Constant: 5},
		{Normal: geometry.NewVector3(0, -1, 0), Constant: 5},
		{Normal: geometry.NewVector3(0, 0, 1), Constant: 1},
		{Normal: geometry.NewVector3(0, 0, -1), Constant: 2},
	}
	assert.Equal(t, expected, planes)
}

func TestPlanesKeepRange(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(-5, -5, -5, 5, 5, 5))
	s.SetEnabled(X, true)
	s.SetRange(X, Range{Min: -1, Max: 2})
	planes := s.Planes()

	assert.True(t, KeepsAll(planes, geometry.NewVector3(0, 100, 100)))
	assert.True(t, KeepsAll(planes, geometry.NewVector3(-1, 0, 0)))
	assert.True(t, KeepsAll(planes, geometry.NewVector3(2, 0, 0)))
	assert.False(t, KeepsAll(planes, geometry.NewVector3(-1.5, 0, 0)))
	assert.False(t, KeepsAll(planes, geometry.NewVector3(2.5, 0, 0)))
}

func TestInvertedRangeIsValid(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(-5, -5, -5, 5, 5, 5))
	s.SetEnabled(X, true)
	s.SetRange(X, Range{Min: 3, Max: -3})

	planes := s.Planes()
	require.Len(t, planes, 2)
	assert.False(t, KeepsAll(planes, geometry.NewVector3(0, 0, 0)))
}

func TestSetField(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(-5, -5, -5, 5, 5, 5))

	require.NoError(t, s.SetField(Y, FieldEnabled, true))
	require.NoError(t, s.SetField(Y, FieldRange, []float64{-1, 1}))
	assert.True(t, s.Axis(Y).Enabled())
	assert.Equal(t, Range{Min: -1, Max: 1}, s.Axis(Y).Range)

	require.NoError(t, s.SetField(Y, FieldRange, [2]float64{-2, 2}))
	assert.Equal(t, Range{Min: -2, Max: 2}, s.Axis(Y).Range)

	assert.Error(t, s.SetField(Y, FieldEnabled, "yes"))
	assert.Error(t, s.SetField(Y, FieldRange, []float64{1}))
	assert.Error(t, s.SetField(Axis(7), FieldEnabled, true))

	// No cross-axis effect
	assert.False(t, s.Axis(X).Enabled())
	assert.Equal(t, Range{Min: -5, Max: 5}, s.Axis(X).Range)
}

func TestClearBoundingBox(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(-5, -5, -5, 5, 5, 5))
	s.SetEnabled(X, true)
	require.Len(t, s.Planes(), 2)

	s.ClearBoundingBox()
	assert.Empty(t, s.Planes())
	assert.Equal(t, Range{Min: -5, Max: 5}, s.Axis(X).Range)
	assert.Equal(t, Range{Min: -10, Max: 10}, s.SliderBounds(X))
}

func TestReset(t *testing.T) {
	s := NewState()
	s.IngestBoundingBox(box(-5, -5, -5, 5, 5, 5))
	s.SetEnabled(X, true)

	s.Reset()
	assert.Equal(t, NewState().Axes(), s.Axes())
	_, ok := s.BoundingBox()
	assert.False(t, ok)
}
