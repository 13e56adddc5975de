package polycore

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawString draws text with its top-left corner at (x, y) in the 7x13 fixed
// font. Text goes straight to the color surface, bypassing the depth test, so
// it is only allowed outside a scene.
func (device *Device) DrawString(x, y int, c color.RGBA, text string) error {
	if device.inScene {
		return fmt.Errorf("draw string: %w", ErrSceneInProgress)
	}

	var face *basicfont.Face = basicfont.Face7x13

	var drawer font.Drawer = font.Drawer{
		Dst:  device.color,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}

	drawer.DrawString(text)

	return nil
}
