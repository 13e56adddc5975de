package polycore

import (
	"image/color"

	"polycore/vecmath"
)

// MaxLights is the number of light slots on a Device.
const MaxLights = 8

// Light is one light slot. Theta and Phi are the full inner and outer cone
// angles of a spot light, in radians. Attenuation and Range are ignored for
// directional lights.
type Light struct {
	Enabled bool
	Type    LightType

	Diffuse  color.RGBA
	Specular color.RGBA
	Ambient  color.RGBA

	Position  vecmath.Vector3
	Direction vecmath.Vector3

	Range   float32
	Falloff float32

	Attenuation0, Attenuation1, Attenuation2 float32

	Theta, Phi float32
}

// Material describes the surface when MaterialSource is SourceMaterial.
// Ambient and Emissive apply in that mode only.
type Material struct {
	Diffuse  color.RGBA
	Ambient  color.RGBA
	Specular color.RGBA
	Emissive color.RGBA

	Power float32
}

// Viewport is the screen rectangle the clip-space unit square maps onto, and
// the depth range a vertex must lie in to count as inside.
type Viewport struct {
	X, Y          int
	Width, Height int

	Near, Far float32
}

// Contains reports whether a processed vertex lies inside the viewport and
// depth range.
func (viewport Viewport) Contains(position vecmath.Vector4) bool {
	var depth float32 = position.Z / position.W

	return position.X >= float32(viewport.X) && position.X < float32(viewport.X+viewport.Width) &&
		position.Y >= float32(viewport.Y) && position.Y < float32(viewport.Y+viewport.Height) &&
		depth >= viewport.Near && depth < viewport.Far
}
