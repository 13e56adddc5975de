package polycore

import (
	"fmt"
	"image"
	"image/color"
)

const BytesPerPixel = 4

// ColorBuffer is a flat RGBA8 surface addressed by (x, y) with an explicit
// stride. Writes outside the surface are dropped and reads return zero.
// It implements draw.Image.
type ColorBuffer struct {
	Pix []byte

	Stride        int
	Width, Height int
}

func NewColorBuffer(width, height int) (*ColorBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("color buffer %dx%d: %w", width, height, ErrInvalidSize)
	}

	return &ColorBuffer{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Stride: width * BytesPerPixel,
		Width:  width,
		Height: height,
	}, nil
}

func (buffer *ColorBuffer) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= buffer.Width || y >= buffer.Height {
		return 0, false
	}

	return y*buffer.Stride + x*BytesPerPixel, true
}

func (buffer *ColorBuffer) SetRGBA(x, y int, c color.RGBA) {
	position, ok := buffer.offset(x, y)
	if !ok {
		return
	}

	var pixel []byte = buffer.Pix[position : position+BytesPerPixel : position+BytesPerPixel]
	pixel[0] = c.R
	pixel[1] = c.G
	pixel[2] = c.B
	pixel[3] = c.A
}

func (buffer *ColorBuffer) RGBAAt(x, y int) color.RGBA {
	position, ok := buffer.offset(x, y)
	if !ok {
		return color.RGBA{}
	}

	var pixel []byte = buffer.Pix[position : position+BytesPerPixel : position+BytesPerPixel]

	return color.RGBA{pixel[0], pixel[1], pixel[2], pixel[3]}
}

func (buffer *ColorBuffer) Set(x, y int, c color.Color) {
	buffer.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

func (buffer *ColorBuffer) At(x, y int) color.Color { return buffer.RGBAAt(x, y) }

func (buffer *ColorBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, buffer.Width, buffer.Height)
}

func (buffer *ColorBuffer) ColorModel() color.Model { return color.RGBAModel }

// Fill sets every pixel to c.
func (buffer *ColorBuffer) Fill(c color.RGBA) {
	if len(buffer.Pix) == 0 {
		return
	}

	copy(buffer.Pix, []byte{c.R, c.G, c.B, c.A})

	for filled := BytesPerPixel; filled < len(buffer.Pix); filled *= 2 {
		copy(buffer.Pix[filled:], buffer.Pix[:filled])
	}
}

// Image returns a copy of the surface.
func (buffer *ColorBuffer) Image() *image.RGBA {
	var img *image.RGBA = image.NewRGBA(buffer.Bounds())

	for y := 0; y < buffer.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+buffer.Width*BytesPerPixel], buffer.Pix[y*buffer.Stride:])
	}

	return img
}

// DepthBuffer is a 16-bit depth surface. Values are depth in [0, 1] scaled
// to the full uint16 range.
type DepthBuffer struct {
	Values []uint16

	Stride        int
	Width, Height int
}

func NewDepthBuffer(width, height int) (*DepthBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("depth buffer %dx%d: %w", width, height, ErrInvalidSize)
	}

	return &DepthBuffer{
		Values: make([]uint16, width*height),
		Stride: width,
		Width:  width,
		Height: height,
	}, nil
}

// DepthValue quantizes a depth in [0, 1]; values outside are clamped.
func DepthValue(depth float32) uint16 {
	return uint16(Clamp(depth, 0, 1) * 65535)
}

func (buffer *DepthBuffer) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= buffer.Width || y >= buffer.Height {
		return 0, false
	}

	return y*buffer.Stride + x, true
}

// At returns the stored value, or 0 outside the surface.
func (buffer *DepthBuffer) At(x, y int) uint16 {
	position, ok := buffer.offset(x, y)
	if !ok {
		return 0
	}

	return buffer.Values[position]
}

// Test compares value against the stored depth with function and stores it on
// pass. Coordinates outside the surface always fail.
func (buffer *DepthBuffer) Test(x, y int, value uint16, function DepthFunction) bool {
	position, ok := buffer.offset(x, y)
	if !ok || !function.Compare(value, buffer.Values[position]) {
		return false
	}

	buffer.Values[position] = value

	return true
}

func (buffer *DepthBuffer) Fill(value uint16) {
	if len(buffer.Values) == 0 {
		return
	}

	buffer.Values[0] = value

	for filled := 1; filled < len(buffer.Values); filled *= 2 {
		copy(buffer.Values[filled:], buffer.Values[:filled])
	}
}
