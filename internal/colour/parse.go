package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColour is returned when a colour string cannot be parsed.
var ErrInvalidColour = errors.New("invalid colour")

// ParseColour parses a colour string.
// Accepted forms: "#rrggbb", "rrggbb", "#rgb", "R, G, B" and "rgb(R, G, B)"
// with decimal channels in 0-255.
func ParseColour(s string) (RGB, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return RGB{}, fmt.Errorf("%w: empty value", ErrInvalidColour)
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseDecimal(value[4 : len(value)-1])
	}
	if strings.Contains(value, ",") {
		return parseDecimal(value)
	}

	return ParseHex(value)
}

// ParseHex parses "#rrggbb" or "#rgb", with or without the leading '#'.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q: expected 3 or 6 hex digits", ErrInvalidColour, s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return RGB{}, fmt.Errorf("%w: %q: not hexadecimal", ErrInvalidColour, s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, s, err)
	}
	return FromColorful(c), nil
}

// parseDecimal parses "R, G, B" with integer channels in 0-255.
func parseDecimal(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q: expected three channels", ErrInvalidColour, s)
	}

	var channels [3]uint8
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: channel %d is not an integer", ErrInvalidColour, s, i+1)
		}
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: %q: channel %d out of range (0-255)", ErrInvalidColour, s, i+1)
		}
		channels[i] = uint8(v)
	}

	return FromBytes(channels[0], channels[1], channels[2]), nil
}
