package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// newEncodeCmd creates the encode command.
func (a *app) newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <colour>",
		Short: "Print the hex, RGB and HSL encodings of a colour",
		Long: `Print the hex, RGB and HSL encodings of a colour.

Colours may be given as hex ("#ffa500", "ffa500", "#fa0") or as decimal
channels ("255, 165, 0" or "rgb(255, 165, 0)").

Examples:
  # Encode a hex colour
  swatch encode "#001978"

  # Encode decimal channels as JSON
  swatch encode -f json "0, 25, 120"`,
		Args: cobra.ExactArgs(1),
		RunE: a.runEncode,
	}
}

// runEncode executes the encode command.
func (a *app) runEncode(cmd *cobra.Command, args []string) error {
	c, err := colour.ParseColour(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse colour: %w", err)
	}

	enc := colour.Encode(c)
	a.logger.Debug("encoded colour", "input", args[0], "hex", enc.Hex)

	out := cmd.OutOrStdout()
	preview := a.showPreview(out)
	return a.write(out, enc, func() string {
		return encodingTable(c, enc, preview)
	})
}
