package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/sample"
)

type inspectOptions struct {
	image  string
	at     string
	region string
}

// newInspectCmd creates the inspect command.
func (a *app) newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [colour]",
		Short: "Encode a colour and score its contrast",
		Long: `Encode a colour and score its contrast against the reference colours.

The colour is given as an argument, or sampled from an image with --image.
Without --at or --region the whole image is averaged.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Inspect a colour with a card preview
  swatch inspect --preview always "#663399"

  # Sample a pixel from a screenshot
  swatch inspect --image screenshot.png --at 120,48

  # Average a region of a wallpaper
  swatch inspect --image wallpaper.webp --region 0,0,64,64`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "image to sample the colour from")
	cmd.Flags().StringVar(&opts.at, "at", "", "pixel to sample (x,y)")
	cmd.Flags().StringVar(&opts.region, "region", "", "region to average (x,y,w,h)")
	cmd.MarkFlagsMutuallyExclusive("at", "region")

	return cmd
}

// runInspect executes the inspect command.
func (a *app) runInspect(cmd *cobra.Command, args []string, opts *inspectOptions) error {
	c, err := a.resolveColour(args, opts)
	if err != nil {
		return err
	}

	result := inspection{
		Colour:   c,
		Encoding: colour.Encode(c),
		Contrast: colour.EvaluateContrast(c),
	}

	out := cmd.OutOrStdout()
	preview := a.showPreview(out)
	return a.write(out, result, func() string {
		var b strings.Builder
		if preview {
			b.WriteString(renderCard(out, c, colour.DefaultReferences, a.cfg.Preview == config.PreviewAlways))
			b.WriteString("\n")
		}
		b.WriteString(encodingTable(c, result.Encoding, false))
		b.WriteString("\n")
		b.WriteString(contrastTable(result.Contrast))
		return b.String()
	})
}

// resolveColour takes the colour from the argument or samples it from an image.
func (a *app) resolveColour(args []string, opts *inspectOptions) (colour.RGB, error) {
	switch {
	case len(args) == 1 && opts.image != "":
		return colour.RGB{}, fmt.Errorf("give either a colour or --image, not both")
	case len(args) == 1:
		if opts.at != "" || opts.region != "" {
			return colour.RGB{}, fmt.Errorf("--at and --region require --image")
		}
		c, err := colour.ParseColour(args[0])
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to parse colour: %w", err)
		}
		return c, nil
	case opts.image == "":
		return colour.RGB{}, fmt.Errorf("a colour argument or --image is required")
	}

	a.logger.Debug("loading image", "path", opts.image)
	img, err := sample.NewFileLoader().Load(opts.image)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("failed to load image (supported: %s): %w",
			strings.Join(sample.SupportedImageExtensions(), ", "), err)
	}

	var c colour.RGB
	switch {
	case opts.at != "":
		pt, err := sample.ParsePoint(opts.at)
		if err != nil {
			return colour.RGB{}, err
		}
		c, err = sample.At(img, pt.X, pt.Y)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to sample image: %w", err)
		}
	case opts.region != "":
		rect, err := sample.ParseRegion(opts.region)
		if err != nil {
			return colour.RGB{}, err
		}
		c, err = sample.Average(img, rect)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to sample image: %w", err)
		}
	default:
		c, err = sample.Average(img, img.Bounds())
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to sample image: %w", err)
		}
	}

	a.logger.Debug("sampled colour", "hex", colour.Hex(c))
	return c, nil
}
