package polycore

import (
	"github.com/chewxy/math32"

	"polycore/vecmath"
)

// preparedLight is an enabled light with its camera-space vectors and cone
// cosines resolved once per draw call.
type preparedLight struct {
	Type LightType

	Diffuse, Specular, Ambient rgb

	// Position is in camera space. Direction points from the vertex toward a
	// directional light, and SpotDirection from a spot light's target back to
	// the light.
	Position, Direction, SpotDirection vecmath.Vector3

	Range, Falloff                           float32
	Attenuation0, Attenuation1, Attenuation2 float32

	CosTheta, CosPhi float32
}

// DrawContext is an immutable snapshot of the device state a draw call reads.
// Vertex processing and rasterization see only the context, never the
// Device.
type DrawContext struct {
	modelView, modelViewProjection, normal vecmath.Matrix

	lighting bool
	lights   []preparedLight
	ambient  rgb
	source   MaterialSource

	materialDiffuse, materialAmbient, materialSpecular, materialEmissive rgb
	power                                                                 float32

	shade ShadeMode

	cullEnabled bool
	cull        CullMode

	depthTest bool
	depthFunc DepthFunction

	texture *Texture
	blend   bool

	viewport Viewport
	quirks   Quirks
}

// DrawContext snapshots the current state. Later changes to the device do not
// affect the returned context.
func (device *Device) DrawContext() DrawContext {
	var ctx DrawContext = DrawContext{
		modelView:           device.Model.Multiply(device.View),
		modelViewProjection: device.Model.Multiply(device.View).Multiply(device.Projection),
		lighting:            device.LightingEnabled,
		ambient:             toRGB(device.AmbientLight),
		source:              device.MaterialSource,
		materialDiffuse:     toRGB(device.Material.Diffuse),
		materialAmbient:     toRGB(device.Material.Ambient),
		materialSpecular:    toRGB(device.Material.Specular),
		materialEmissive:    toRGB(device.Material.Emissive),
		power:               device.Material.Power,
		shade:               device.ShadeMode,
		cullEnabled:         device.CullEnabled,
		cull:                device.CullMode,
		depthTest:           device.DepthTestEnabled,
		depthFunc:           device.DepthFunc,
		blend:               device.BlendVertexColor,
		viewport:            device.Viewport,
		quirks:              device.Quirks,
	}

	if device.TextureEnabled && device.Texture != nil {
		ctx.texture = device.Texture
	}

	if !ctx.lighting {
		return ctx
	}

	ctx.normal = ctx.modelView.Inverse().Transpose()
	ctx.lights = make([]preparedLight, 0, MaxLights)

	for _, light := range device.Lights {
		if !light.Enabled {
			continue
		}

		ctx.lights = append(ctx.lights, prepareLight(light, device.View))
	}

	return ctx
}

func prepareLight(light Light, view vecmath.Matrix) preparedLight {
	var prepared preparedLight = preparedLight{
		Type:         light.Type,
		Diffuse:      toRGB(light.Diffuse),
		Specular:     toRGB(light.Specular),
		Ambient:      toRGB(light.Ambient),
		Position:     light.Position.Transform(view),
		Range:        light.Range,
		Falloff:      light.Falloff,
		Attenuation0: light.Attenuation0,
		Attenuation1: light.Attenuation1,
		Attenuation2: light.Attenuation2,
		CosTheta:     math32.Cos(light.Theta / 2),
		CosPhi:       math32.Cos(light.Phi / 2),
	}

	// Directional lights keep their direction in the space it was given in.
	if light.Type == LightDirectional {
		prepared.Direction = light.Direction.Normalize().Negate()
	}

	if light.Type == LightSpot {
		prepared.SpotDirection = light.Direction.TransformNormal(view).Negate().Normalize()
	}

	return prepared
}
