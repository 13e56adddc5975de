package scene

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"

	"polycore/vecmath"
)

// Vec3 is written as a three element sequence.
type Vec3 [3]float32

func (v Vec3) Vector3() vecmath.Vector3 {
	return vecmath.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Color is written either as "#rrggbb" or "#rrggbbaa", or as a sequence of
// three or four 0-255 channels. Alpha defaults to 255.
type Color struct {
	R, G, B, A uint8
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, c.A}
}

// UnmarshalYAML implements yaml.Unmarshaler for Color.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var channels []uint8

	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}

		decoded, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", s, err)
		}

		channels = decoded
	case yaml.SequenceNode:
		if err := value.Decode(&channels); err != nil {
			return fmt.Errorf("invalid color: %w", err)
		}
	default:
		return fmt.Errorf("invalid color at line %d", value.Line)
	}

	if len(channels) != 3 && len(channels) != 4 {
		return fmt.Errorf("invalid color at line %d: %d channels", value.Line, len(channels))
	}

	*c = Color{channels[0], channels[1], channels[2], 255}

	if len(channels) == 4 {
		c.A = channels[3]
	}

	return nil
}
