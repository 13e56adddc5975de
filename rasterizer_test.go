package polycore

import (
	"image"
	"image/color"
	"testing"
	"time"

	"polycore/vecmath"
)

func TestDepthOrdering(t *testing.T) {
	var near, far []Vertex = quad(0.3, red), quad(0.6, blue)

	tests := []struct {
		name  string
		order [][]Vertex
	}{
		{"near first", [][]Vertex{near, far}},
		{"far first", [][]Vertex{far, near}},
	}

	for _, test := range tests {
		device := newTestDevice(t, 16, 16)
		device.DepthTestEnabled = true
		device.DepthFunc = DepthLessEqual

		device.BeginScene()

		for _, vertices := range test.order {
			if err := device.DrawPrimitive(vertices, TriangleList, 0, 2); err != nil {
				t.Fatalf("%s: DrawPrimitive() error = %v", test.name, err)
			}
		}

		device.EndScene()

		if got := countPixels(device.ColorBuffer(), red); got != 16*16 {
			t.Errorf("%s: %d pixels show the near quad, want %d", test.name, got, 16*16)
		}

		if got := device.DepthBuffer().At(5, 5); got != DepthValue(0.3) {
			t.Errorf("%s: depth = %d, want %d", test.name, got, DepthValue(0.3))
		}
	}
}

func TestDepthFailedCounted(t *testing.T) {
	device := newTestDevice(t, 16, 16)
	device.DepthTestEnabled = true
	device.DepthFunc = DepthLess

	drawScene(t, device, append(quad(0.3, red), quad(0.6, blue)...))

	var stats Stats = device.Stats()

	if stats.Pixels != 16*16 || stats.DepthFailed != 16*16 {
		t.Errorf("pixels = %d, depth failed = %d, want %d each", stats.Pixels, stats.DepthFailed, 16*16)
	}
}

func TestDepthTestDisabledOverwrites(t *testing.T) {
	device := newTestDevice(t, 16, 16)
	device.DepthFunc = DepthNever

	drawScene(t, device, append(quad(0.3, red), quad(0.6, blue)...))

	if got := countPixels(device.ColorBuffer(), blue); got != 16*16 {
		t.Errorf("%d pixels show the last quad, want %d", got, 16*16)
	}

	if got := device.DepthBuffer().At(0, 0); got != DepthValue(1) {
		t.Errorf("depth = %d with testing disabled, want untouched %d", got, DepthValue(1))
	}
}

func TestSmoothInterpolation(t *testing.T) {
	device := newTestDevice(t, 16, 16)

	var vertices []Vertex = quad(0.5, red)
	vertices[1].Diffuse = blue // top right
	vertices[2].Diffuse = blue // bottom right
	vertices[4].Diffuse = blue

	drawScene(t, device, vertices)

	var left, right color.RGBA = device.ColorBuffer().RGBAAt(0, 8), device.ColorBuffer().RGBAAt(15, 8)

	if left.R < 250 || left.B > 5 {
		t.Errorf("left edge = %v, want red", left)
	}

	if right.B < 200 || right.R > 50 {
		t.Errorf("right edge = %v, want mostly blue", right)
	}

	if middle := device.ColorBuffer().RGBAAt(8, 8); middle.R < 64 || middle.B < 64 {
		t.Errorf("middle = %v, want a blend", middle)
	}
}

func TestFlatShading(t *testing.T) {
	device := newTestDevice(t, 16, 16)
	device.ShadeMode = ShadeFlat

	var vertices []Vertex = screenTriangle([3][2]float32{{0, 0}, {16, 0}, {0, 16}})
	vertices[0].Diffuse = red
	vertices[1].Diffuse = blue
	vertices[2].Diffuse = blue

	drawScene(t, device, vertices)

	var pixels int = device.Stats().Pixels

	if got := countPixels(device.ColorBuffer(), red); pixels == 0 || got != pixels {
		t.Errorf("%d of %d pixels are the first vertex color", got, pixels)
	}
}

func TestViewportOffset(t *testing.T) {
	device := newTestDevice(t, 16, 16, WithViewport(Viewport{X: 8, Width: 8, Height: 16, Far: 1}))

	drawScene(t, device, quad(0.5, red))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			var want color.RGBA = black
			if x >= 8 {
				want = red
			}

			if got := device.ColorBuffer().RGBAAt(x, y); got != want {
				t.Fatalf("RGBAAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func uniformTexture(t *testing.T, c color.RGBA) *Texture {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for index := 0; index < len(img.Pix); index += 4 {
		img.Pix[index], img.Pix[index+1], img.Pix[index+2], img.Pix[index+3] = c.R, c.G, c.B, c.A
	}

	texture, err := NewTexture(img)
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}

	return texture
}

func closeTo(a, b uint8) bool {
	return max(a, b)-min(a, b) <= 1
}

func TestTextureModes(t *testing.T) {
	var texel color.RGBA = color.RGBA{200, 100, 50, 255}
	var vertexColor color.RGBA = color.RGBA{128, 255, 0, 255}

	tests := []struct {
		name    string
		enabled bool
		blend   bool
		want    color.RGBA
	}{
		{"disabled", false, false, vertexColor},
		{"replace", true, false, texel},
		{"modulate", true, true, color.RGBA{100, 100, 0, 255}},
	}

	for _, test := range tests {
		device := newTestDevice(t, 16, 16)
		device.Texture = uniformTexture(t, texel)
		device.TextureEnabled = test.enabled
		device.BlendVertexColor = test.blend

		drawScene(t, device, quad(0.5, vertexColor))

		var got color.RGBA = device.ColorBuffer().RGBAAt(7, 9)

		if !closeTo(got.R, test.want.R) || !closeTo(got.G, test.want.G) || !closeTo(got.B, test.want.B) {
			t.Errorf("%s: pixel = %v, want %v", test.name, got, test.want)
		}

		if device.Texture.Locked() {
			t.Errorf("%s: texture still locked after the draw", test.name)
		}
	}
}

func TestTextureCoordinates(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, blue)
		}
	}

	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 1, white)

	texture, err := NewTexture(img)
	if err != nil {
		t.Fatal(err)
	}

	device := newTestDevice(t, 16, 16)
	device.Texture = texture
	device.TextureEnabled = true

	drawScene(t, device, quad(0.5, white))

	// (u, v) = (0, 0) at the top left corner.
	if got := device.ColorBuffer().RGBAAt(0, 0); got != red {
		t.Errorf("top left = %v, want %v", got, red)
	}

	// (u, v) = (0.75, 0.75) samples the center texel.
	if got := device.ColorBuffer().RGBAAt(12, 12); got != white {
		t.Errorf("RGBAAt(12, 12) = %v, want %v", got, white)
	}
}

func TestExtremeTrianglesStayInViewport(t *testing.T) {
	// A w of 0.25 pushes x to about 2.5e38 on a 320 wide viewport, so the
	// long edge slope overflows although every vertex is finite.
	var overflow vecmath.Matrix = vecmath.Identity()
	overflow[vecmath.M44] = 0.25

	tests := []struct {
		name       string
		projection vecmath.Matrix
		positions  [3]vecmath.Vector3
	}{
		{"zero area", vecmath.Identity(), [3]vecmath.Vector3{{X: -0.5, Y: -0.5, Z: 0.5}, {Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}}},
		{"huge coordinates", vecmath.Identity(), [3]vecmath.Vector3{{Z: 0.5}, {X: 1e30, Y: 1e30, Z: 0.5}, {X: -1e30, Y: 1e30, Z: 0.5}}},
		{"overflowing slope", overflow, [3]vecmath.Vector3{{X: 3.9e35, Y: 0.25}, {}, {X: -3.9e35, Y: -0.25}}},
	}

	for _, test := range tests {
		device := newTestDevice(t, 320, 240, WithViewport(Viewport{Width: 320, Height: 200, Far: 1}))
		device.Projection = test.projection
		device.DepthTestEnabled = true
		device.DepthFunc = DepthLessEqual

		var vertices []Vertex
		for _, position := range test.positions {
			vertices = append(vertices, Vertex{Position: position, Diffuse: white})
		}

		done := make(chan error, 1)

		device.BeginScene()

		go func() {
			done <- device.DrawPrimitive(vertices, TriangleList, 0, 1)
		}()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("%s: DrawPrimitive() error = %v", test.name, err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("%s: DrawPrimitive() did not return", test.name)
		}

		device.EndScene()

		for y := 200; y < 240; y++ {
			for x := 0; x < 320; x++ {
				if got := device.ColorBuffer().RGBAAt(x, y); got != black {
					t.Fatalf("%s: pixel (%d, %d) below the viewport = %v, want %v", test.name, x, y, got, black)
				}
			}
		}
	}
}
