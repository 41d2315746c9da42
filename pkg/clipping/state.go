// Package clipping owns the per-axis clipping ranges of the viewer and
// derives half-space clip planes from them.
package clipping

import (
	"fmt"

	"github.com/philipparndt/gonebula/pkg/geometry"
)

// Mode tells whether an axis range follows the bounding box or is held
// at a user value
type Mode int

const (
	// ModeAuto ranges track the current bounding box extent; no planes
	ModeAuto Mode = iota
	// ModeFixed ranges are frozen at the user's value and produce planes
	ModeFixed
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeFixed {
		return "fixed"
	}
	return "auto"
}

// AxisState is the clipping state of one axis
type AxisState struct {
	Mode  Mode
	Range Range
}

// Enabled reports whether the axis clips
func (s AxisState) Enabled() bool {
	return s.Mode == ModeFixed
}

// Field names one mutable part of an axis state
type Field int

const (
	FieldEnabled Field = iota
	FieldRange
)

// String returns the field name
func (f Field) String() string {
	if f == FieldRange {
		return "range"
	}
	return "enabled"
}

// ParseField accepts "enabled" or "range"
func ParseField(s string) (Field, error) {
	switch s {
	case "enabled":
		return FieldEnabled, nil
	case "range":
		return FieldRange, nil
	}
	return 0, fmt.Errorf("unknown clipping field %q (expected enabled or range)", s)
}

// State owns the three axis states and the bounding box they follow
type State struct {
	axes   [3]AxisState
	box    geometry.BoundingBox
	hasBox bool
}

// NewState creates a state with every axis in auto mode, zero ranges and
// no bounding box
func NewState() *State {
	return &State{}
}

// Reset returns the state to its initial value
func (s *State) Reset() {
	*s = State{}
}

// Axis returns the state of one axis
func (s *State) Axis(a Axis) AxisState {
	return s.axes[a]
}

// Axes returns the states of x, y and z
func (s *State) Axes() [3]AxisState {
	return s.axes
}

// BoundingBox returns the current bounding box, if one was ingested
func (s *State) BoundingBox() (geometry.BoundingBox, bool) {
	return s.box, s.hasBox
}

// IngestBoundingBox stores box as the current bounding box and moves the
// range of every auto axis to the box extent. Fixed axes keep their range.
func (s *State) IngestBoundingBox(box geometry.BoundingBox) {
	s.box = box
	s.hasBox = true
	for _, a := range Axes {
		if s.axes[a].Mode == ModeAuto {
			s.axes[a].Range = s.extent(a)
		}
	}
}

// ClearBoundingBox forgets the current box. Ranges are left as they are
// and no planes are derived until a box is ingested again.
func (s *State) ClearBoundingBox() {
	s.box = geometry.BoundingBox{}
	s.hasBox = false
}

// SetEnabled switches an axis between fixed (enabled) and auto mode.
// Enabling freezes the current range; disabling snaps the range back to
// the bounding box extent.
func (s *State) SetEnabled(a Axis, enabled bool) {
	if !a.Valid() {
		return
	}
	if enabled {
		s.axes[a].Mode = ModeFixed
		return
	}
	s.axes[a].Mode = ModeAuto
	if s.hasBox {
		s.axes[a].Range = s.extent(a)
	}
}

// SetRange sets the range of an axis. On an auto axis the value only
// lasts until the next bounding box is ingested.
func (s *State) SetRange(a Axis, r Range) {
	if !a.Valid() {
		return
	}
	s.axes[a].Range = r
}

// SetField updates one field of an axis from a loosely typed value, as
// delivered by UI controls. value must be a bool for FieldEnabled and a
// Range, [2]float64 or []float64 of length 2 for FieldRange.
func (s *State) SetField(a Axis, field Field, value any) error {
	if !a.Valid() {
		return fmt.Errorf("invalid axis %d", int(a))
	}
	switch field {
	case FieldEnabled:
		enabled, ok := value.(bool)
		if !ok {
			return fmt.Errorf("clipping %s.%s: expected bool, got %T", a, field, value)
		}
		s.SetEnabled(a, enabled)
	case FieldRange:
		r, err := toRange(value)
		if err != nil {
			return fmt.Errorf("clipping %s.%s: %w", a, field, err)
		}
		s.SetRange(a, r)
	default:
		return fmt.Errorf("unknown clipping field %d", int(field))
	}
	return nil
}

// Planes derives the clip planes of all enabled axes in x, y, z order,
// min plane before max plane. Without a bounding box there are none.
func (s *State) Planes() []Plane {
	planes := make([]Plane, 0, 6)
	if !s.hasBox {
		return planes
	}
	for _, a := range Axes {
		st := s.axes[a]
		if !st.Enabled() {
			continue
		}
		planes = append(planes, minPlane(a, st.Range.Min), maxPlane(a, st.Range.Max))
	}
	return planes
}

// SliderBounds returns the interval a range control for axis a should
// offer: the bounding box extent, or [-10, 10] without a box
func (s *State) SliderBounds(a Axis) Range {
	if !s.hasBox {
		return Range{Min: -10, Max: 10}
	}
	return s.extent(a)
}

func (s *State) extent(a Axis) Range {
	return Range{
		Min: s.box.Min.Component(int(a)),
		Max: s.box.Max.Component(int(a)),
	}
}

func toRange(value any) (Range, error) {
	switch v := value.(type) {
	case Range:
		return v, nil
	case [2]float64:
		return Range{Min: v[0], Max: v[1]}, nil
	case []float64:
		if len(v) != 2 {
			return Range{}, fmt.Errorf("expected 2 values, got %d", len(v))
		}
		return Range{Min: v[0], Max: v[1]}, nil
	}
	return Range{}, fmt.Errorf("expected range, got %T", value)
}
