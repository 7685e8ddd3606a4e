package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// newContrastCmd creates the contrast command.
func (a *app) newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <colour>",
		Short: "Score a colour's contrast against the reference colours",
		Long: `Score a colour's WCAG contrast ratio against the blue, black and white
reference colours.

A colour is marked visible against a reference when the ratio, rounded to two
decimal places, is strictly greater than 4.5.

Examples:
  # Contrast of orange against the references
  swatch contrast "#ffa500"

  # As YAML
  swatch contrast -f yaml "255, 165, 0"`,
		Args: cobra.ExactArgs(1),
		RunE: a.runContrast,
	}
}

// runContrast executes the contrast command.
func (a *app) runContrast(cmd *cobra.Command, args []string) error {
	c, err := colour.ParseColour(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse colour: %w", err)
	}

	res := colour.EvaluateContrast(c)
	a.logger.Debug("evaluated contrast", "input", args[0],
		"blue", res.BlueRatio(), "black", res.BlackRatio(), "white", res.WhiteRatio())

	return a.write(cmd.OutOrStdout(), res, func() string {
		return contrastTable(res)
	})
}
