package polycore

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is an RGBA8 texel array sampled nearest-neighbor by the
// rasterizer. A device read-locks the bound texture for the duration of a
// draw call.
type Texture struct {
	Width, Height int

	Data []byte

	locks int
}

// NewTexture converts img to RGBA8. The image origin becomes texel (0, 0).
func NewTexture(img image.Image) (*Texture, error) {
	var bounds image.Rectangle = img.Bounds()

	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("texture %dx%d: %w", bounds.Dx(), bounds.Dy(), ErrInvalidSize)
	}

	var rgba *image.RGBA = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)

	return &Texture{Width: bounds.Dx(), Height: bounds.Dy(), Data: rgba.Pix}, nil
}

// LoadTexture decodes a PNG, JPEG, BMP, TIFF or WebP file.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}

	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	texture, err := NewTexture(img)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}

	Logger().Debug("polycore: texture loaded", "path", path, "width", texture.Width, "height", texture.Height)

	return texture, nil
}

// Lock takes a read lock. Locks nest. The count only records whether a draw
// call is using the texture; Texel does not check it.
func (texture *Texture) Lock() { texture.locks++ }

func (texture *Texture) Unlock() {
	if texture.locks > 0 {
		texture.locks--
	}
}

func (texture *Texture) Locked() bool { return texture.locks > 0 }

// Texel returns the texel at (x, y), clamping the coordinates to the edge.
func (texture *Texture) Texel(x, y int) color.RGBA {
	x = max(0, min(x, texture.Width-1))
	y = max(0, min(y, texture.Height-1))

	var position int = (y*texture.Width + x) * BytesPerPixel

	return color.RGBA{texture.Data[position], texture.Data[position+1], texture.Data[position+2], texture.Data[position+3]}
}

// sample fetches the nearest texel for texture coordinates in [0, 1].
func (texture *Texture) sample(u, v float32) rgb {
	return toRGB(texture.Texel(int(u*float32(texture.Width-1)), int(v*float32(texture.Height-1))))
}
