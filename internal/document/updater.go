package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ErrNoFrameSelected is returned when the document selection does not start with a frame.
var ErrNoFrameSelected = errors.New("no frame selected")

// Names of the nodes the updater writes into.
const (
	TextRGB        = "RGB"
	TextHSL        = "HSL"
	TextHex        = "HEX"
	ContrastsFrame = "Contrasts"
)

// Skip records a colour card instance that could not be updated.
type Skip struct {
	Instance string `json:"instance" yaml:"instance"`
	Reason   string `json:"reason" yaml:"reason"`
}

// Report summarises an update run.
type Report struct {
	Frame   string   `json:"frame" yaml:"frame"`
	Updated []string `json:"updated" yaml:"updated"`
	Skipped []Skip   `json:"skipped" yaml:"skipped"`
}

// Updater fills colour card instances with their colour encodings and contrast ratios.
type Updater struct {
	logger   hclog.Logger
	notifier Notifier
	refs     colour.References
}

// Option configures an Updater.
type Option func(*Updater)

// WithNotifier sets where user-facing messages go. Defaults to the logger.
func WithNotifier(n Notifier) Option {
	return func(u *Updater) {
		u.notifier = n
	}
}

// WithReferences overrides the reference colours used for contrast.
func WithReferences(refs colour.References) Option {
	return func(u *Updater) {
		u.refs = refs
	}
}

// NewUpdater creates an Updater. A nil logger discards output.
func NewUpdater(logger hclog.Logger, opts ...Option) *Updater {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	u := &Updater{
		logger: logger.Named("updater"),
		refs:   colour.DefaultReferences,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.notifier == nil {
		u.notifier = LogNotifier{Logger: logger}
	}
	return u
}

// Update applies colour details to every instance in the selected frame.
// Instances that cannot be read are skipped and reported; they do not fail the run.
func (u *Updater) Update(ctx context.Context, doc *Document) (*Report, error) {
	frame := doc.SelectedFrame()
	if frame == nil {
		u.notifier.Notify(hclog.Error, "Please select a frame with color components.")
		return nil, ErrNoFrameSelected
	}

	u.notifier.Notify(hclog.Info, "Updating color details, please wait...")
	report := &Report{
		Frame:   frame.Name,
		Updated: []string{},
		Skipped: []Skip{},
	}

	for _, instance := range frame.Children {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("update interrupted: %w", err)
		}
		if instance.Type != NodeInstance {
			continue
		}

		c, reason := swatchColour(instance)
		if reason != "" {
			u.notifier.Notify(hclog.Warn, reason)
			report.Skipped = append(report.Skipped, Skip{Instance: instance.Name, Reason: reason})
			continue
		}

		u.apply(instance, c)
		report.Updated = append(report.Updated, instance.Name)
		u.notifier.Notify(hclog.Info, "Updated color details for instance: "+instance.Name)
	}

	u.notifier.Notify(hclog.Info, "All color details updated successfully.")
	u.logger.Debug("update complete", "frame", frame.Name,
		"updated", len(report.Updated), "skipped", len(report.Skipped))
	return report, nil
}

// swatchColour reads the solid fill of an instance's rectangle.
// A non-empty reason means the instance must be skipped.
func swatchColour(instance *Node) (colour.RGB, string) {
	rect := instance.FirstChild(NodeRectangle)
	if rect == nil {
		return colour.RGB{}, "No rectangle found in instance: " + instance.Name
	}
	if len(rect.Fills) == 0 {
		return colour.RGB{}, "No valid fills found in rectangle: " + instance.Name
	}
	fill := rect.Fills[0]
	if fill.Type != PaintSolid {
		return colour.RGB{}, "Rectangle fill is not solid in: " + instance.Name
	}
	if fill.Color == nil {
		return colour.RGB{}, "No valid fills found in rectangle: " + instance.Name
	}
	if !fill.Color.InRange() {
		return colour.RGB{}, "Fill colour out of range in: " + instance.Name
	}
	return *fill.Color, ""
}

func (u *Updater) apply(instance *Node, c colour.RGB) {
	enc := colour.Encode(c)
	contrasts := u.refs.Evaluate(c)
	u.logger.Debug("colour card", "instance", instance.Name,
		"hex", enc.Hex, "rgb", enc.RGB, "hsl", enc.HSL)

	for _, element := range instance.Children {
		switch {
		case element.Type == NodeText:
			switch element.Name {
			case TextRGB:
				element.Characters = enc.RGB
			case TextHSL:
				element.Characters = enc.HSL
			case TextHex:
				element.Characters = enc.Hex
			}
		case element.Type == NodeFrame && element.Name == ContrastsFrame:
			u.applyContrasts(element, contrasts)
		}
	}
}

func (u *Updater) applyContrasts(frame *Node, contrasts colour.ContrastResult) {
	for _, element := range frame.Children {
		if element.Type != NodeText {
			u.notifier.Notify(hclog.Warn, fmt.Sprintf("Unexpected child type inside Contrasts frame: %s", element.Type))
			continue
		}
		var c colour.Contrast
		switch element.Name {
		case colour.ReferenceBlue:
			c = contrasts.Blue
		case colour.ReferenceBlack:
			c = contrasts.Black
		case colour.ReferenceWhite:
			c = contrasts.White
		default:
			continue
		}
		element.Characters = c.Text
		element.SetVisible(c.Visible)
	}
}
