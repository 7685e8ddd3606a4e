package colour

import (
	"fmt"
	"math"
	"strconv"
)

// VisibilityThreshold is the contrast ratio a colour must exceed to be legible
// against a reference. WCAG AA for normal text.
const VisibilityThreshold = 4.5

// Reference names, in evaluation order.
const (
	ReferenceBlue  = "Blue"
	ReferenceBlack = "Black"
	ReferenceWhite = "White"
)

// References is the fixed set of colours a sample is scored against.
type References struct {
	Blue  RGB
	Black RGB
	White RGB
}

// DefaultReferences are the brand reference colours.
var DefaultReferences = References{
	Blue:  RGB{R: 0, G: 25.0 / 255.0, B: 120.0 / 255.0},
	Black: RGB{R: 38.0 / 255.0, G: 38.0 / 255.0, B: 38.0 / 255.0},
	White: RGB{R: 1, G: 1, B: 1},
}

// Colours returns the reference colours in evaluation order: blue, black, white.
func (refs References) Colours() []RGB {
	return []RGB{refs.Blue, refs.Black, refs.White}
}

// LegibleText returns black or white, whichever contrasts more with c.
func LegibleText(c RGB) RGB {
	black, white := RGB{}, RGB{R: 1, G: 1, B: 1}
	if ContrastRatio(c, white) > ContrastRatio(c, black) {
		return white
	}
	return black
}

// Contrast is the score of a sample against one reference colour.
type Contrast struct {
	Reference string  `json:"reference" yaml:"reference"`
	Ratio     float64 `json:"ratio" yaml:"ratio"`
	Text      string  `json:"text" yaml:"text"`
	Visible   bool    `json:"visible" yaml:"visible"`
}

// ContrastResult holds the scores against blue, black and white.
type ContrastResult struct {
	Blue  Contrast `json:"blue" yaml:"blue"`
	Black Contrast `json:"black" yaml:"black"`
	White Contrast `json:"white" yaml:"white"`
}

// Slots returns the scores in fixed order: blue, black, white.
func (r ContrastResult) Slots() []Contrast {
	return []Contrast{r.Blue, r.Black, r.White}
}

// BlueRatio returns the formatted ratio against the blue reference.
func (r ContrastResult) BlueRatio() string { return r.Blue.Text }

// BlueVisible reports whether the sample is legible against blue.
func (r ContrastResult) BlueVisible() bool { return r.Blue.Visible }

// BlackRatio returns the formatted ratio against the black reference.
func (r ContrastResult) BlackRatio() string { return r.Black.Text }

// BlackVisible reports whether the sample is legible against black.
func (r ContrastResult) BlackVisible() bool { return r.Black.Visible }

// WhiteRatio returns the formatted ratio against the white reference.
func (r ContrastResult) WhiteRatio() string { return r.White.Text }

// WhiteVisible reports whether the sample is legible against white.
func (r ContrastResult) WhiteVisible() bool { return r.White.Visible }

// EvaluateContrast scores a colour against DefaultReferences.
func EvaluateContrast(c RGB) ContrastResult {
	return DefaultReferences.Evaluate(c)
}

// Evaluate scores a colour against each reference colour.
func (refs References) Evaluate(c RGB) ContrastResult {
	return ContrastResult{
		Blue:  score(ReferenceBlue, c, refs.Blue),
		Black: score(ReferenceBlack, c, refs.Black),
		White: score(ReferenceWhite, c, refs.White),
	}
}

func score(name string, c, ref RGB) Contrast {
	ratio := ContrastRatio(c, ref)
	text := FormatRatio(ratio)
	return Contrast{
		Reference: name,
		Ratio:     ratio,
		Text:      text,
		Visible:   Visible(text),
	}
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	return 0.2126*gammaCorrect(c.R) + 0.7152*gammaCorrect(c.G) + 0.0722*gammaCorrect(c.B)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// FormatRatio formats a ratio with exactly two decimal places.
// Exact midpoints round half away from zero.
func FormatRatio(v float64) string {
	// Only multiples of 1/8 can sit exactly on a third-decimal 5;
	// strconv would round those half to even.
	if eighths := v * 8; math.Abs(v) < 1<<50 && eighths == math.Trunc(eighths) {
		m := int64(eighths)
		if m%2 != 0 {
			neg := m < 0
			if neg {
				m = -m
			}
			hundredths := (25*m + 1) / 2
			text := fmt.Sprintf("%d.%02d", hundredths/100, hundredths%100)
			if neg {
				text = "-" + text
			}
			return text
		}
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Visible reports whether a formatted ratio clears VisibilityThreshold.
// Unparseable text is never visible.
func Visible(ratio string) bool {
	v, err := strconv.ParseFloat(ratio, 64)
	if err != nil {
		return false
	}
	return MeetsThreshold(v)
}

// MeetsThreshold reports whether a ratio is strictly above VisibilityThreshold.
func MeetsThreshold(ratio float64) bool {
	return ratio > VisibilityThreshold
}
