// Package material maps material ids of .tri files to display colors and
// names, and tracks which materials are shown.
package material

import "fmt"

// Special material ids used by the simulator for optical and detector
// surfaces
const (
	IdealMirror = -122
	Vacuum      = -123
	BSEDetector = -124
	SEDetector  = -125
	Detector    = -126
	Terminator  = -127
	Inert       = -128
)

// Info is the presentation of one material id
type Info struct {
	Name    string
	Color   Color
	Special bool
}

var specials = map[int]Info{
	IdealMirror: {Name: "Ideal mirror", Color: mustHex("#9adabe"), Special: true},
	Vacuum:      {Name: "Vacuum", Color: mustHex("#6b7ecd"), Special: true},
	BSEDetector: {Name: "BSE detector", Color: mustHex("#c772a6"), Special: true},
	SEDetector:  {Name: "SE detector", Color: mustHex("#d39f3f"), Special: true},
	Detector:    {Name: "Detector", Color: mustHex("#c7633e"), Special: true},
	Terminator:  {Name: "Terminator", Color: mustHex("#cd4666"), Special: true},
	Inert:       {Name: "Does nothing", Color: mustHex("#444444"), Special: true},
}

// Palette is cycled through by ordinary material ids
var Palette = [...]Color{
	mustHex("#9e0142"),
	mustHex("#d53e4f"),
	mustHex("#f46d43"),
	mustHex("#fdae61"),
	mustHex("#fee08b"),
	mustHex("#ffffbf"),
	mustHex("#e6f598"),
	mustHex("#abdda4"),
	mustHex("#66c2a5"),
	mustHex("#3288bd"),
	mustHex("#5e4fa2"),
}

// IsSpecial reports whether id is one of the fixed special ids
func IsSpecial(id int) bool {
	_, ok := specials[id]
	return ok
}

// SpecialIDs returns the special ids from -122 down to -128
func SpecialIDs() []int {
	return []int{IdealMirror, Vacuum, BSEDetector, SEDetector, Detector, Terminator, Inert}
}

// Lookup returns name and color of a material id
func Lookup(id int) Info {
	if info, ok := specials[id]; ok {
		return info
	}
	return Info{
		Name:  fmt.Sprintf("Material %d", id),
		Color: Palette[paletteIndex(id)],
	}
}

// ColorFor returns the display color of a material id
func ColorFor(id int) Color {
	return Lookup(id).Color
}

// NameFor returns the display name of a material id
func NameFor(id int) string {
	return Lookup(id).Name
}

func paletteIndex(id int) int {
	i := id % len(Palette)
	if i < 0 {
		i = -i
	}
	return i
}
