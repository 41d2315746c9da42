package material

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB triple
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// NRGBA converts to the standard library color type
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts to a go-colorful color for blending
func (c Color) Colorful() colorful.Color {
	r, g, b := c.Float()
	return colorful.Color{R: r, G: g, B: b}
}

// FromColorful converts a go-colorful color, clamping it to the RGB gamut
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// Float returns the channels scaled to [0, 1]
func (c Color) Float() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// ParseHex parses #rrggbb (the leading # is optional)
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return Color{}, fmt.Errorf("invalid color %q: expected 6 hex digits", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	// colorful stops scanning at the first non-hex digit
	if !strings.EqualFold(c.Hex(), s) {
		return Color{}, fmt.Errorf("invalid color %q: expected 6 hex digits", s)
	}
	return FromColorful(c), nil
}

func mustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
