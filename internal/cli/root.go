// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/version"
)

// app holds state shared by the command tree of one NewRootCmd call.
type app struct {
	verbose  bool
	quiet    bool
	noColor  bool
	logLevel string
	format   *enumValue
	preview  *enumValue

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		format:  newEnumValue(config.FormatText, config.Formats()...),
		preview: newEnumValue(config.PreviewAuto, config.PreviewModes()...),
		cfg:     config.Default(),
		logger:  hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Colour encodings and WCAG contrast for colour cards",
		Long: `Swatch derives the hex, RGB and HSL encodings of a colour and scores its
WCAG contrast against the brand reference colours (blue, black and white).

A colour is legible against a reference when its contrast ratio is strictly
greater than 4.5:1. Swatch can also fill in the colour cards of a design
document exported as JSON or YAML.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colour previews and coloured logs")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	flags.VarP(a.format, "format", "f", "output format ("+a.format.Allowed()+")")
	flags.Var(a.preview, "preview", "colour preview ("+a.preview.Allowed()+")")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(a.newEncodeCmd())
	rootCmd.AddCommand(a.newContrastCmd())
	rootCmd.AddCommand(a.newInspectCmd())
	rootCmd.AddCommand(a.newUpdateCmd())

	return rootCmd
}

// setup resolves configuration (defaults, then environment, then flags) and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format.String()
	}
	if flags.Changed("preview") {
		cfg.Preview = a.preview.String()
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.noColor {
		cfg.NoColor = true
	}
	switch {
	case a.verbose:
		cfg.LogLevel = "debug"
	case a.quiet:
		cfg.LogLevel = "error"
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg)
	a.logger.Debug("configuration resolved", "format", cfg.Format, "preview", cfg.Preview, "log_level", cfg.LogLevel)
	return nil
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
