package polycore

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"

	"polycore/vecmath"
)

const colorEpsilon = 1e-3

func approxRGB(got, want rgb) bool {
	return math32.Abs(got.R-want.R) <= colorEpsilon &&
		math32.Abs(got.G-want.G) <= colorEpsilon &&
		math32.Abs(got.B-want.B) <= colorEpsilon
}

func gray(value float32) rgb { return rgb{value, value, value} }

func TestUnlitVertexKeepsDiffuse(t *testing.T) {
	device := newTestDevice(t, 8, 8)
	device.Lights[0] = Light{Enabled: true, Type: LightDirectional, Diffuse: white, Direction: vecmath.Vector3{Z: -1}}
	device.Material = Material{Diffuse: white, Ambient: white, Emissive: white}

	var input Vertex = Vertex{Diffuse: color.RGBA{51, 102, 204, 255}, Specular: white}
	var ctx DrawContext = device.DrawContext()

	if got, want := ctx.processVertex(input).Color, toRGB(input.Diffuse); got != want {
		t.Errorf("processVertex().Color = %v, want %v", got, want)
	}
}

func TestScreenMapping(t *testing.T) {
	device := newTestDevice(t, 200, 100, WithViewport(Viewport{X: 10, Y: 20, Width: 100, Height: 50, Far: 1}))
	var ctx DrawContext = device.DrawContext()

	tests := []struct {
		position vecmath.Vector3
		x, y     float32
	}{
		{vecmath.Vector3{X: 0, Y: 0}, 60, 45},
		{vecmath.Vector3{X: -1, Y: 1}, 10, 20},
		{vecmath.Vector3{X: 1, Y: -1}, 110, 70},
	}

	for _, test := range tests {
		var got vecmath.Vector4 = ctx.processVertex(Vertex{Position: test.position}).Position

		if got.X != test.x || got.Y != test.y {
			t.Errorf("processVertex(%v) = (%v, %v), want (%v, %v)", test.position, got.X, got.Y, test.x, test.y)
		}
	}
}

// litColor lights a single vertex at position with normal using the given
// light and a white material.
func litColor(t *testing.T, light Light, position, normal vecmath.Vector3, options ...Option) rgb {
	t.Helper()

	device := newTestDevice(t, 8, 8, options...)
	device.LightingEnabled = true
	device.MaterialSource = SourceMaterial
	device.Material = Material{Diffuse: white, Ambient: white}
	device.Lights[0] = light

	var ctx DrawContext = device.DrawContext()

	return ctx.processVertex(Vertex{Position: position, Normal: normal}).Color
}

func TestDirectionalLight(t *testing.T) {
	var light Light = Light{
		Enabled:   true,
		Type:      LightDirectional,
		Diffuse:   color.RGBA{128, 128, 128, 255},
		Direction: vecmath.Vector3{Z: -1},
	}

	tests := []struct {
		name   string
		normal vecmath.Vector3
		want   rgb
	}{
		{"facing", vecmath.Vector3{Z: 1}, gray(128. / 255.)},
		{"facing unnormalized", vecmath.Vector3{Z: 5}, gray(128. / 255.)},
		{"edge on", vecmath.Vector3{X: 1}, gray(0)},
		{"facing away", vecmath.Vector3{Z: -1}, gray(0)},
	}

	for _, test := range tests {
		if got := litColor(t, light, vecmath.Vector3{}, test.normal); !approxRGB(got, test.want) {
			t.Errorf("%s: color = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestGlobalAmbient(t *testing.T) {
	device := newTestDevice(t, 8, 8)
	device.LightingEnabled = true
	device.AmbientLight = color.RGBA{32, 64, 96, 255}
	device.MaterialSource = SourceMaterial
	device.Material = Material{Ambient: color.RGBA{255, 255, 0, 255}, Emissive: color.RGBA{0, 0, 10, 255}}

	var ctx DrawContext = device.DrawContext()
	var got rgb = ctx.processVertex(Vertex{Normal: vecmath.Vector3{Z: 1}}).Color

	if want := (rgb{32. / 255., 64. / 255., 10. / 255.}); !approxRGB(got, want) {
		t.Errorf("material source color = %v, want %v", got, want)
	}

	device.MaterialSource = SourceVertex
	ctx = device.DrawContext()
	got = ctx.processVertex(Vertex{Normal: vecmath.Vector3{Z: 1}, Diffuse: white}).Color

	if want := (rgb{32. / 255., 64. / 255., 96. / 255.}); !approxRGB(got, want) {
		t.Errorf("vertex source color = %v, want %v", got, want)
	}
}

func TestPointLightAttenuation(t *testing.T) {
	var light Light = Light{
		Enabled:      true,
		Type:         LightPoint,
		Diffuse:      white,
		Position:     vecmath.Vector3{Z: 2},
		Attenuation0: 1,
		Attenuation2: 0.25,
	}

	// d = 2, attenuation = 1 / (1 + 0.25 * 4).
	if got := litColor(t, light, vecmath.Vector3{}, vecmath.Vector3{Z: 1}); !approxRGB(got, gray(0.5)) {
		t.Errorf("color = %v, want %v", got, gray(0.5))
	}

	light.Range = 1

	if got := litColor(t, light, vecmath.Vector3{}, vecmath.Vector3{Z: 1}); !approxRGB(got, gray(0)) {
		t.Errorf("out of range color = %v, want black", got)
	}
}

func TestCrossLightVectorQuirk(t *testing.T) {
	var light Light = Light{
		Enabled:      true,
		Type:         LightPoint,
		Diffuse:      white,
		Position:     vecmath.Vector3{Z: 2},
		Attenuation0: 1,
		Attenuation2: 0.25,
	}

	var position, normal vecmath.Vector3 = vecmath.Vector3{X: 1}, vecmath.Vector3{Y: -1}

	// The light sits in the plane of the surface, so it contributes nothing.
	if got := litColor(t, light, position, normal); !approxRGB(got, gray(0)) {
		t.Errorf("geometric light vector color = %v, want black", got)
	}

	// (1,0,0) x (0,0,2) = (0,-2,0): a unit vector along the normal, d = 1.
	if got := litColor(t, light, position, normal, WithQuirks(QuirkCrossLightVector)); !approxRGB(got, gray(0.8)) {
		t.Errorf("cross light vector color = %v, want %v", got, gray(0.8))
	}
}

func TestSpotLightCone(t *testing.T) {
	var light Light = Light{
		Enabled:      true,
		Type:         LightSpot,
		Diffuse:      color.RGBA{100, 100, 100, 255},
		Position:     vecmath.Vector3{Z: 2},
		Direction:    vecmath.Vector3{Z: -1},
		Attenuation0: 1,
		Falloff:      1,
		Theta:        math32.Pi / 4,
		Phi:          math32.Pi / 2,
	}

	var normal vecmath.Vector3 = vecmath.Vector3{Z: 1}

	var cosTheta, cosPhi float32 = math32.Cos(math32.Pi / 8), math32.Cos(math32.Pi / 4)
	var onAxis float32 = 100. / 255. * (1 - cosPhi) / (cosTheta - cosPhi)

	if got := litColor(t, light, vecmath.Vector3{}, normal); !approxRGB(got, gray(min(onAxis, 1))) {
		t.Errorf("on axis color = %v, want %v", got, gray(onAxis))
	}

	if got := litColor(t, light, vecmath.Vector3{X: 3}, normal); !approxRGB(got, gray(0)) {
		t.Errorf("outside cone color = %v, want black", got)
	}
}

func TestSpecularHighlight(t *testing.T) {
	device := newTestDevice(t, 8, 8)
	device.LightingEnabled = true
	device.MaterialSource = SourceMaterial
	device.Material = Material{Specular: white, Power: 8}
	device.Lights[0] = Light{Enabled: true, Type: LightDirectional, Specular: white, Direction: vecmath.Vector3{Z: -1}}
	device.View = vecmath.Translation(0, 0, -5)

	var ctx DrawContext = device.DrawContext()

	// Eye, light and normal all along +z: N.H = 1.
	if got := ctx.processVertex(Vertex{Normal: vecmath.Vector3{Z: 1}}).Color; !approxRGB(got, gray(1)) {
		t.Errorf("highlight color = %v, want white", got)
	}

	// Normal perpendicular to the half vector.
	if got := ctx.processVertex(Vertex{Normal: vecmath.Vector3{X: 1}}).Color; !approxRGB(got, gray(0)) {
		t.Errorf("grazing color = %v, want black", got)
	}
}

func TestDisabledLightsIgnored(t *testing.T) {
	var light Light = Light{Type: LightDirectional, Diffuse: white, Direction: vecmath.Vector3{Z: -1}}

	if got := litColor(t, light, vecmath.Vector3{}, vecmath.Vector3{Z: 1}); !approxRGB(got, gray(0)) {
		t.Errorf("disabled light color = %v, want black", got)
	}
}
