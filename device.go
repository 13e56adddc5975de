// Package polycore is a software triangle rasterizer. A Device owns a color
// and a 16-bit depth surface and draws lit, optionally textured triangle
// lists, strips and fans into them with a fixed-function pipeline:
// per-vertex transform and lighting, back-face culling, trivial rejection and
// scanline filling with affine interpolation.
//
// Draw calls go between BeginScene and EndScene:
//
//	device, _ := polycore.NewDevice(320, 240)
//	device.Clear(polycore.ClearColor | polycore.ClearDepth)
//	device.BeginScene()
//	device.DrawPrimitive(vertices, polycore.TriangleList, 0, len(vertices)/3)
//	device.EndScene()
//	device.Present(screen)
package polycore

import (
	"fmt"
	"image"
	"image/color"

	"polycore/vecmath"
)

// Stats counts the work done since the last BeginScene.
type Stats struct {
	Submitted int // triangles requested by draw calls
	Culled    int
	Rejected  int // wholly outside the viewport volume
	Drawn     int

	Pixels      int
	DepthFailed int
}

// Presenter is a display target that accepts a full frame of RGBA8 pixels,
// such as *ebiten.Image.
type Presenter interface {
	WritePixels(pixels []byte)
}

// Device holds the render state and surfaces. The exported fields are read
// at every draw call. A Device is not safe for concurrent use.
type Device struct {
	Model, View, Projection vecmath.Matrix

	Material       Material
	MaterialSource MaterialSource

	Lights          [MaxLights]Light
	LightingEnabled bool
	AmbientLight    color.RGBA

	ShadeMode ShadeMode

	CullEnabled bool
	CullMode    CullMode

	DepthTestEnabled bool
	DepthFunc        DepthFunction

	Texture          *Texture
	TextureEnabled   bool
	BlendVertexColor bool

	ClearColor color.RGBA
	ClearDepth float32

	Viewport Viewport
	Quirks   Quirks

	color *ColorBuffer
	depth *DepthBuffer

	inScene   bool
	triangles []triangle
	stats     Stats
}

// NewDevice creates a device with width x height surfaces. Matrices start as
// identity, lighting, culling, depth testing and texturing start disabled and
// shading is smooth.
func NewDevice(width, height int, options ...Option) (*Device, error) {
	var opts deviceOptions = defaultOptions()

	for _, option := range options {
		option(&opts)
	}

	var colorBuffer *ColorBuffer = opts.colorBuffer

	if colorBuffer == nil {
		buffer, err := NewColorBuffer(width, height)
		if err != nil {
			return nil, fmt.Errorf("new device: %w", err)
		}

		colorBuffer = buffer
	} else if colorBuffer.Width != width || colorBuffer.Height != height {
		return nil, fmt.Errorf("new device: color buffer is %dx%d, want %dx%d: %w",
			colorBuffer.Width, colorBuffer.Height, width, height, ErrInvalidSize)
	}

	depthBuffer, err := NewDepthBuffer(width, height)
	if err != nil {
		return nil, fmt.Errorf("new device: %w", err)
	}

	var device *Device = &Device{
		Model:          vecmath.Identity(),
		View:           vecmath.Identity(),
		Projection:     vecmath.Identity(),
		MaterialSource: SourceVertex,
		ShadeMode:      ShadeSmooth,
		DepthFunc:      DepthAlways,
		ClearColor:     opts.clearColor,
		ClearDepth:     opts.clearDepth,
		Viewport:       Viewport{Width: width, Height: height, Near: 0, Far: 1},
		Quirks:         opts.quirks,
		color:          colorBuffer,
		depth:          depthBuffer,
	}

	if opts.viewport != nil {
		device.Viewport = *opts.viewport
	}

	logHost()
	Logger().Debug("polycore: device created", "width", width, "height", height, "quirks", opts.quirks)

	return device, nil
}

func (device *Device) Width() int  { return device.color.Width }
func (device *Device) Height() int { return device.color.Height }

// ColorBuffer returns the color surface. Callers must not write to it while a
// scene is in progress.
func (device *Device) ColorBuffer() *ColorBuffer { return device.color }

func (device *Device) DepthBuffer() *DepthBuffer { return device.depth }

// Stats returns the counters of the current or last scene.
func (device *Device) Stats() Stats { return device.stats }

// InScene reports whether the color surface is locked by BeginScene.
func (device *Device) InScene() bool { return device.inScene }

// BeginScene locks the color surface for drawing and resets Stats.
func (device *Device) BeginScene() error {
	if device.inScene {
		return fmt.Errorf("begin scene: %w", ErrSceneInProgress)
	}

	device.inScene = true
	device.stats = Stats{}

	return nil
}

func (device *Device) EndScene() error {
	if !device.inScene {
		return fmt.Errorf("end scene: %w", ErrNoScene)
	}

	device.inScene = false

	Logger().Debug("polycore: scene",
		"submitted", device.stats.Submitted,
		"culled", device.stats.Culled,
		"rejected", device.stats.Rejected,
		"drawn", device.stats.Drawn,
		"pixels", device.stats.Pixels,
		"depthFailed", device.stats.DepthFailed,
	)

	return nil
}

// Clear resets the selected surfaces to ClearColor and ClearDepth. The color
// surface can only be cleared outside a scene; the depth surface any time.
func (device *Device) Clear(flags ClearFlags) error {
	if flags&ClearColor != 0 && device.inScene {
		return fmt.Errorf("clear: %w", ErrSceneInProgress)
	}

	if flags&ClearColor != 0 {
		device.color.Fill(device.ClearColor)
	}

	if flags&ClearDepth != 0 {
		device.depth.Fill(DepthValue(device.ClearDepth))
	}

	return nil
}

// Present copies the color surface to target. It fails while a scene is in
// progress.
func (device *Device) Present(target Presenter) error {
	if device.inScene {
		return fmt.Errorf("present: %w", ErrSceneInProgress)
	}

	if device.color.Stride == device.color.Width*BytesPerPixel {
		target.WritePixels(device.color.Pix[:device.color.Height*device.color.Stride])
		return nil
	}

	target.WritePixels(device.color.Image().Pix)

	return nil
}

// Image returns a copy of the color surface.
func (device *Device) Image() (*image.RGBA, error) {
	if device.inScene {
		return nil, fmt.Errorf("image: %w", ErrSceneInProgress)
	}

	return device.color.Image(), nil
}
