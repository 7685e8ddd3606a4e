// Package colour derives textual encodings and WCAG contrast figures for a single colour.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour with red, green and blue channels normalised to [0,1].
// Channels are display values, not gamma decoded.
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// FromBytes builds an RGB from 8-bit channel values.
func FromBytes(r, g, b uint8) RGB {
	return RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// FromColorful converts a go-colorful colour.
func FromColorful(c colorful.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Colorful returns the colour as a go-colorful value.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Bytes returns the 8-bit channel values, clamped to [0,255].
func (c RGB) Bytes() (r, g, b uint8) {
	return clampByte(scale(c.R)), clampByte(scale(c.G)), clampByte(scale(c.B))
}

// InRange reports whether every channel lies within [0,1].
func (c RGB) InRange() bool {
	for _, v := range []float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// String returns the colour as "rgb(r, g, b)" using rounded 8-bit values.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%s)", DecimalText(c))
}

// scale maps a [0,1] channel to [0,255], rounding half away from zero.
func scale(v float64) int {
	return int(math.Round(v * 255))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
