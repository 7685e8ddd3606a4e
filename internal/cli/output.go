package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
)

// inspection is the structured form of the inspect command's output.
type inspection struct {
	Colour   colour.RGB            `json:"colour" yaml:"colour"`
	Encoding colour.Encoding       `json:"encoding" yaml:"encoding"`
	Contrast colour.ContrastResult `json:"contrast" yaml:"contrast"`
}

// write renders v in the configured format. text is only called for text output.
func (a *app) write(w io.Writer, v any, text func() string) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
	default:
		if _, err := io.WriteString(w, text()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// showPreview reports whether colour previews should accompany text output to w.
func (a *app) showPreview(w io.Writer) bool {
	if a.cfg.Format != config.FormatText || a.cfg.NoColor {
		return false
	}
	switch a.cfg.Preview {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}

// encodingTable renders the three encodings of a colour.
func encodingTable(c colour.RGB, enc colour.Encoding, preview bool) string {
	hex := enc.Hex
	if preview {
		hex = colour.FormatWithPreview(c, 4)
	}

	table := NewTable("FORMAT", "VALUE")
	table.AddRow("HEX", hex)
	table.AddRow("RGB", enc.RGB)
	table.AddRow("HSL", enc.HSL)
	return table.Render()
}

// contrastTable renders the scores against each reference colour.
func contrastTable(res colour.ContrastResult) string {
	table := NewTable("REFERENCE", "RATIO", "VISIBLE")
	for _, slot := range res.Slots() {
		table.AddRow(slot.Reference, slot.Text, yesNo(slot.Visible))
	}
	return table.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
