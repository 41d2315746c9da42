package clipping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gonebula/pkg/geometry"
)

// Axis identifies one of the three coordinate axes
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// Axes lists the axes in plane derivation order
var Axes = [3]Axis{X, Y, Z}

// String returns the lower-case axis name
func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Valid reports whether a is X, Y or Z
func (a Axis) Valid() bool {
	return a >= X && a <= Z
}

// Unit returns the unit vector along the axis
func (a Axis) Unit() geometry.Vector3 {
	return geometry.Vector3{}.WithComponent(int(a), 1)
}

// ParseAxis accepts x, y or z in any case
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("unknown axis %q (expected x, y or z)", s)
}

// Range is a closed interval along one axis. Min <= Max is not enforced;
// an inverted range clips everything away.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Length returns Max - Min
func (r Range) Length() float64 {
	return r.Max - r.Min
}

// String formats the range as [min, max]
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// ParseRange reads "min:max" or "min,max"
func ParseRange(s string) (Range, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range %q (expected min:max)", s)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range minimum %q: %w", parts[0], err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range maximum %q: %w", parts[1], err)
	}
	return Range{Min: lo, Max: hi}, nil
}
