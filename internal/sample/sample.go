// Package sample reads colour samples from image files.
package sample

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/security"
)

// ErrOutOfBounds is returned when a sample point or region lies outside the image.
var ErrOutOfBounds = errors.New("sample outside image bounds")

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if err := security.ValidateInputPath(path); err != nil {
		return nil, fmt.Errorf("invalid image path: %w", err)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(security.NewLimitedReader(file, security.MaxInputSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// At returns the colour of a single pixel. Alpha is discarded.
func At(img image.Image, x, y int) (colour.RGB, error) {
	pt := image.Pt(x, y)
	if !pt.In(img.Bounds()) {
		return colour.RGB{}, fmt.Errorf("%w: point (%d,%d) not in %v", ErrOutOfBounds, x, y, img.Bounds())
	}
	return toRGB(img.At(x, y)), nil
}

// Average returns the mean colour of a region, clipped to the image bounds.
func Average(img image.Image, region image.Rectangle) (colour.RGB, error) {
	r := region.Canon().Intersect(img.Bounds())
	if r.Empty() {
		return colour.RGB{}, fmt.Errorf("%w: region %v does not overlap %v", ErrOutOfBounds, region, img.Bounds())
	}

	var sumR, sumG, sumB float64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := toRGB(img.At(x, y))
			sumR += c.R
			sumG += c.G
			sumB += c.B
		}
	}

	n := float64(r.Dx() * r.Dy())
	return colour.RGB{R: sumR / n, G: sumG / n, B: sumB / n}, nil
}

// toRGB converts to 8-bit un-premultiplied channels.
func toRGB(c color.Color) colour.RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colour.FromBytes(n.R, n.G, n.B)
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (image.Point, error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return image.Pt(v[0], v[1]), nil
}

// ParseRegion parses "x,y,w,h" into a rectangle.
func ParseRegion(s string) (image.Rectangle, error) {
	v, err := parseInts(s, 4)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: %w", s, err)
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: width and height must be positive", s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated integers", n)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
