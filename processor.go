package polycore

import (
	"github.com/chewxy/math32"

	"polycore/vecmath"
)

// processVertex transforms input to clip space, lights it and maps x and y to
// the viewport. z and w stay in clip space.
func (ctx *DrawContext) processVertex(input Vertex) pipelineVertex {
	var result pipelineVertex = pipelineVertex{
		Position: input.Position.Vector4().Transform(ctx.modelViewProjection),
		TexCoord: input.TexCoord,
	}

	if ctx.lighting {
		result.Color = ctx.light(input)
	} else {
		result.Color = toRGB(input.Diffuse)
	}

	result.Color = result.Color.Clamp()

	var viewport Viewport = ctx.viewport
	var width, height float32 = float32(viewport.Width), float32(viewport.Height)
	var denominator float32 = 2 * result.Position.W

	result.Position.X = result.Position.X*width/denominator + float32(viewport.X) + width/2
	result.Position.Y = -result.Position.Y*height/denominator + float32(viewport.Y) + height/2

	return result
}

// light evaluates every enabled light in camera space and returns the summed
// color, each term clamped before the sum.
func (ctx *DrawContext) light(input Vertex) rgb {
	var position vecmath.Vector3 = input.Position.Transform(ctx.modelView)
	var normal vecmath.Vector3 = input.Normal.TransformNormal(ctx.normal).Normalize()
	var eye vecmath.Vector3 = position.Negate().Normalize()

	var diffuseSource rgb = ctx.materialDiffuse
	if ctx.source == SourceVertex {
		diffuseSource = toRGB(input.Diffuse)
	}

	var ambient, diffuse, specular rgb

	for index := range ctx.lights {
		var light *preparedLight = &ctx.lights[index]

		direction, factor, ok := ctx.lightVector(light, position)
		if !ok {
			continue
		}

		ambient = ambient.Add(light.Ambient.Scale(factor))

		// N.L is not clamped, so lights behind the surface subtract.
		diffuse = diffuse.Add(diffuseSource.Multiply(light.Diffuse).Scale(normal.Dot(direction) * factor))

		var half vecmath.Vector3 = eye.Add(direction).Normalize()
		var highlight float32 = math32.Pow(max(normal.Dot(half), 0), ctx.power)

		specular = specular.Add(light.Specular.Scale(highlight * factor))
	}

	var emissive rgb

	if ctx.source == SourceMaterial {
		ambient = ctx.materialAmbient.Multiply(ambient.Add(ctx.ambient))
		specular = specular.Multiply(ctx.materialSpecular)
		emissive = ctx.materialEmissive
	} else {
		ambient = ambient.Add(ctx.ambient)
		specular = specular.Multiply(toRGB(input.Specular))
	}

	return ambient.Clamp().Add(diffuse.Clamp()).Add(specular.Clamp()).Add(emissive.Clamp())
}

// lightVector returns the unit vector from the vertex toward light and the
// combined attenuation and spot factor. ok is false when the vertex is out of
// the light's range.
func (ctx *DrawContext) lightVector(light *preparedLight, position vecmath.Vector3) (direction vecmath.Vector3, factor float32, ok bool) {
	if light.Type == LightDirectional {
		return light.Direction, 1, true
	}

	var distance float32

	if ctx.quirks.Has(QuirkCrossLightVector) {
		direction = position.Cross(light.Position).Normalize()
		distance = direction.Length()
	} else {
		var toLight vecmath.Vector3 = light.Position.Sub(position)
		distance = toLight.Length()

		if light.Range > 0 && distance > light.Range {
			return vecmath.Vector3{}, 0, false
		}

		direction = toLight.Scale(1 / distance)
	}

	factor = 1 / (light.Attenuation0 + light.Attenuation1*distance + light.Attenuation2*distance*distance)

	if light.Type == LightSpot {
		factor *= spotFactor(light, direction)
	}

	return direction, factor, true
}

func spotFactor(light *preparedLight, direction vecmath.Vector3) float32 {
	var rho float32 = light.SpotDirection.Dot(direction)

	if rho <= light.CosPhi {
		return 0
	}

	return math32.Pow((rho-light.CosPhi)/(light.CosTheta-light.CosPhi), light.Falloff)
}
