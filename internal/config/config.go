// Package config resolves swatch runtime settings from defaults and the environment.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Environment variables read by WithEnvConfig.
const (
	EnvFormat   = "SWATCH_FORMAT"
	EnvPreview  = "SWATCH_PREVIEW"
	EnvLogLevel = "SWATCH_LOG_LEVEL"
	EnvNoColor  = "NO_COLOR"
)

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// PreviewModes lists the accepted preview modes.
func PreviewModes() []string {
	return []string{PreviewAuto, PreviewAlways, PreviewNever}
}

// Config holds settings shared by all commands.
type Config struct {
	Format   string
	Preview  string
	LogLevel string
	NoColor  bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:   FormatText,
		Preview:  PreviewAuto,
		LogLevel: "info",
	}
}

// Level returns the configured hclog level.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// Validate checks every field holds an accepted value.
func (c Config) Validate() error {
	if !slices.Contains(Formats(), c.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", c.Format, strings.Join(Formats(), ", "))
	}
	if !slices.Contains(PreviewModes(), c.Preview) {
		return fmt.Errorf("invalid preview mode: %s (valid: %s)", c.Preview, strings.Join(PreviewModes(), ", "))
	}
	if c.Level() == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error, off)", c.LogLevel)
	}
	return nil
}

// Builder assembles a Config from defaults and optional sources.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithEnvConfig loads configuration from environment variables.
// Reads SWATCH_FORMAT, SWATCH_PREVIEW, SWATCH_LOG_LEVEL and NO_COLOR.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup sets the environment lookup function (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build constructs and validates the Config.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.useEnv {
		if v, ok := b.lookup(EnvFormat); ok && v != "" {
			config.Format = strings.ToLower(strings.TrimSpace(v))
		}
		if v, ok := b.lookup(EnvPreview); ok && v != "" {
			config.Preview = strings.ToLower(strings.TrimSpace(v))
		}
		if v, ok := b.lookup(EnvLogLevel); ok && v != "" {
			config.LogLevel = strings.ToLower(strings.TrimSpace(v))
		}
		// https://no-color.org: any non-empty value disables colour.
		if v, ok := b.lookup(EnvNoColor); ok && v != "" {
			config.NoColor = true
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
