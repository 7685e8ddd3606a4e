package colour

import (
	"fmt"
	"math"
)

// Encoding holds the textual representations of a colour.
type Encoding struct {
	Hex string `json:"hex" yaml:"hex"`
	RGB string `json:"rgb" yaml:"rgb"`
	HSL string `json:"hsl" yaml:"hsl"`
}

// Encode derives the hex, decimal RGB and HSL strings for a colour.
func Encode(c RGB) Encoding {
	return Encoding{
		Hex: Hex(c),
		RGB: DecimalText(c),
		HSL: HSLText(c),
	}
}

// Hex returns the colour as a lowercase "#rrggbb" string.
// Out of range channels are clamped so each component stays two digits.
func Hex(c RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// DecimalText returns the colour as "R, G, B" with each channel in 0-255.
func DecimalText(c RGB) string {
	return fmt.Sprintf("%d, %d, %d", scale(c.R), scale(c.G), scale(c.B))
}

// HSL converts a colour to hue, saturation and lightness.
// All three values are in [0,1]; hue is a fraction of a full turn.
func HSL(c RGB) (h, s, l float64) {
	r, g, b := c.R, c.G, c.B

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l = (maxVal + minVal) / 2

	// Achromatic.
	if maxVal == minVal {
		return 0, 0, l
	}

	delta := maxVal - minVal
	if l > 0.5 {
		s = delta / (2 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h /= 6
	return h, s, l
}

// HSLText returns the colour as "H, S%, L%" with hue in whole degrees.
func HSLText(c RGB) string {
	h, s, l := HSL(c)
	return fmt.Sprintf("%d, %d%%, %d%%",
		int(math.Round(h*360)),
		int(math.Round(s*100)),
		int(math.Round(l*100)))
}
