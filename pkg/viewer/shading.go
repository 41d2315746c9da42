package viewer

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/philipparndt/gonebula/pkg/geometry"
	"github.com/philipparndt/gonebula/pkg/material"
)

// Shading selects the surface model
type Shading int

const (
	// ShadingPhong is plastic-like diffuse plus specular lighting
	ShadingPhong Shading = iota
	// ShadingEnvMap is a metallic surface reflecting a sky/ground gradient
	ShadingEnvMap
)

// String returns the config name of the shading
func (s Shading) String() string {
	if s == ShadingEnvMap {
		return "envmap"
	}
	return "phong"
}

// ParseShading accepts "phong" or "envmap"
func ParseShading(s string) (Shading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phong":
		return ShadingPhong, nil
	case "envmap":
		return ShadingEnvMap, nil
	}
	return ShadingPhong, fmt.Errorf("unsupported shading %q (expected phong or envmap)", s)
}

const (
	ambient        = 0.3
	lightIntensity = 0.5
	shininess      = 30.0
	specular       = 0.07
	metalness      = 0.8
	roughness      = 0.3
)

// Directions towards the two lights, in camera space. The lights travel
// with the camera and sit behind it, one up-right and one down-left.
var lights = [2]geometry.Vector3{
	geometry.NewVector3(5, 5, -5).Normalize(),
	geometry.NewVector3(-5, -5, -5).Normalize(),
}

var (
	skyColor    = [3]float64{0.85, 0.9, 1.0}
	groundColor = [3]float64{0.35, 0.32, 0.3}
)

// shade lights a face. normal and view are in camera space; view points
// from the surface towards the eye.
func shade(base material.Color, normal, view geometry.Vector3, mode Shading) color.RGBA {
	r, g, b := base.Float()
	albedo := [3]float64{r, g, b}

	diffuse := 0.0
	spec := 0.0
	for _, l := range lights {
		nl := normal.Dot(l)
		if nl <= 0 {
			continue
		}
		diffuse += nl * lightIntensity
		h := l.Add(view).Normalize()
		spec += math.Pow(math.Max(0, normal.Dot(h)), shininess) * lightIntensity
	}

	var out [3]float64
	switch mode {
	case ShadingEnvMap:
		// Reflect the view ray and look the direction up in the gradient
		refl := normal.Mul(2 * normal.Dot(view)).Sub(view)
		t := math.Max(0, math.Min(1, refl.Y*0.5+0.5))
		gloss := math.Pow(spec, 1/(1-roughness))
		for i := range out {
			env := groundColor[i] + (skyColor[i]-groundColor[i])*t
			dielectric := albedo[i] * (ambient + diffuse)
			metal := albedo[i] * env
			out[i] = dielectric*(1-metalness) + metal*metalness + gloss*0.2
		}
	default:
		for i := range out {
			out[i] = albedo[i]*(ambient+diffuse) + spec*specular
		}
	}

	return color.RGBA{toByte(out[0]), toByte(out[1]), toByte(out[2]), 255}
}

func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(1, v))*255 + 0.5)
}

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
