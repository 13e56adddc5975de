package polycore

import "image/color"

// Option configures a Device during creation.
//
// Example:
//
//	device, err := polycore.NewDevice(320, 240,
//		polycore.WithClearColor(color.RGBA{16, 16, 16, 255}),
//		polycore.WithQuirks(polycore.QuirkYOrderCulling),
//	)
type Option func(*deviceOptions)

type deviceOptions struct {
	viewport    *Viewport
	clearColor  color.RGBA
	clearDepth  float32
	quirks      Quirks
	colorBuffer *ColorBuffer
}

func defaultOptions() deviceOptions {
	return deviceOptions{
		clearColor: color.RGBA{0, 0, 0, 255},
		clearDepth: 1,
	}
}

// WithViewport replaces the default viewport, which covers the whole surface
// with a depth range of [0, 1).
func WithViewport(viewport Viewport) Option {
	return func(o *deviceOptions) {
		o.viewport = &viewport
	}
}

func WithClearColor(c color.RGBA) Option {
	return func(o *deviceOptions) {
		o.clearColor = c
	}
}

// WithClearDepth sets the value Clear(ClearDepth) writes, in [0, 1].
func WithClearDepth(depth float32) Option {
	return func(o *deviceOptions) {
		o.clearDepth = depth
	}
}

func WithQuirks(quirks Quirks) Option {
	return func(o *deviceOptions) {
		o.quirks = quirks
	}
}

// WithColorBuffer renders into an existing surface instead of allocating one.
// Its dimensions must match the device.
func WithColorBuffer(buffer *ColorBuffer) Option {
	return func(o *deviceOptions) {
		o.colorBuffer = buffer
	}
}
