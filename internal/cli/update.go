package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/document"
)

type updateOptions struct {
	output string
	dryRun bool
}

// newUpdateCmd creates the update command.
func (a *app) newUpdateCmd() *cobra.Command {
	opts := &updateOptions{}
	cmd := &cobra.Command{
		Use:   "update <document>",
		Short: "Fill in the colour cards of a design document",
		Long: `Fill in the colour cards of a design document.

The first selected node must be a frame. Each INSTANCE inside it is a colour
card: its first RECTANGLE's solid fill is the card colour, its TEXT nodes named
HEX, RGB and HSL receive the encodings, and the TEXT nodes Blue, Black and
White inside its "Contrasts" frame receive the contrast ratios and are hidden
when the ratio does not exceed 4.5.

Cards that cannot be read are skipped and reported; the rest are still updated.

Documents are JSON (.json) or YAML (.yaml, .yml), optionally xz-compressed (.xz).

Examples:
  # Update a document in place
  swatch update brand.json

  # Write the result elsewhere, as compressed YAML
  swatch update brand.json --output brand.yaml.xz

  # Report what would change without writing
  swatch update --dry-run brand.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUpdate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: update in place)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "do not write the document")

	return cmd
}

// runUpdate executes the update command.
func (a *app) runUpdate(cmd *cobra.Command, args []string, opts *updateOptions) error {
	path := args[0]

	a.logger.Debug("loading document", "path", path)
	doc, err := document.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	updater := document.NewUpdater(a.logger)
	report, err := updater.Update(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	if !opts.dryRun {
		dest := path
		if opts.output != "" {
			dest = opts.output
		}
		if err := document.Save(dest, doc); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		a.logger.Debug("document written", "path", dest)
	}

	return a.write(cmd.OutOrStdout(), report, func() string {
		return formatReport(report)
	})
}

// formatReport renders an update report as text.
func formatReport(report *document.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Frame %q: updated %d, skipped %d\n", report.Frame, len(report.Updated), len(report.Skipped))
	if len(report.Skipped) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	table := NewTable("INSTANCE", "REASON")
	for _, skip := range report.Skipped {
		table.AddRow(skip.Instance, skip.Reason)
	}
	b.WriteString(table.Render())
	return b.String()
}
