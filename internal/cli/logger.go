package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/config"
)

// newLogger creates the hclog logger used by every command.
func newLogger(w io.Writer, cfg config.Config) hclog.Logger {
	color := hclog.AutoColor
	if cfg.NoColor {
		color = hclog.ColorOff
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        "swatch",
		Output:      w,
		Level:       cfg.Level(),
		Color:       color,
		DisableTime: true,
	})
}
