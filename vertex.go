package polycore

import (
	"image/color"

	"github.com/chewxy/math32"

	"polycore/vecmath"
)

const RGBToFloat = 1. / 255.

// Vertex is the per-vertex input of a draw call. Normal is in model space.
type Vertex struct {
	Position vecmath.Vector3
	Normal   vecmath.Vector3
	Diffuse  color.RGBA
	Specular color.RGBA
	TexCoord vecmath.Vector2
}

// rgb is a linear color with channels nominally in [0, 1].
type rgb struct {
	R, G, B float32
}

func toRGB(c color.RGBA) rgb {
	return rgb{float32(c.R) * RGBToFloat, float32(c.G) * RGBToFloat, float32(c.B) * RGBToFloat}
}

func (c1 rgb) Add(c2 rgb) rgb      { return rgb{c1.R + c2.R, c1.G + c2.G, c1.B + c2.B} }
func (c1 rgb) Sub(c2 rgb) rgb      { return rgb{c1.R - c2.R, c1.G - c2.G, c1.B - c2.B} }
func (c1 rgb) Multiply(c2 rgb) rgb { return rgb{c1.R * c2.R, c1.G * c2.G, c1.B * c2.B} }
func (c1 rgb) Scale(s float32) rgb { return rgb{c1.R * s, c1.G * s, c1.B * s} }

func (c1 rgb) Clamp() rgb {
	return rgb{Clamp(c1.R, 0, 1), Clamp(c1.G, 0, 1), Clamp(c1.B, 0, 1)}
}

// RGBA converts to 8-bit, clamping each channel first.
func (c1 rgb) RGBA() color.RGBA {
	var c rgb = c1.Clamp()

	return color.RGBA{byte(c.R * 255), byte(c.G * 255), byte(c.B * 255), 255}
}

// Clamp limits value to [min, max]. NaN clamps to min.
func Clamp(value, min, max float32) float32 {
	if !(value >= min) {
		return min
	} else if value > max {
		return max
	}

	return value
}

// pipelineVertex is a processed vertex: x and y in screen space, z and w still
// in clip space.
type pipelineVertex struct {
	Position vecmath.Vector4
	TexCoord vecmath.Vector2
	Color    rgb
}

func (v pipelineVertex) finite() bool {
	return !math32.IsNaN(v.Position.X) && !math32.IsInf(v.Position.X, 0) &&
		!math32.IsNaN(v.Position.Y) && !math32.IsInf(v.Position.Y, 0) &&
		!math32.IsNaN(v.Position.Z) && !math32.IsInf(v.Position.Z, 0) &&
		v.Position.W != 0
}

// triangle is the unit of work between assembly and rasterization.
type triangle struct {
	Vertices [3]pipelineVertex
	Visible  bool
}
