package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jmylchreest/swatch/internal/colour"
)

const cardWidth = 22

// renderCard draws a colour card: the sample as background, a title in
// black or white, then one line per reference colour written in that colour.
// Lines for references that are not legible are struck through.
func renderCard(w io.Writer, c colour.RGB, refs colour.References, forceColour bool) string {
	r := lipgloss.NewRenderer(w)
	if forceColour {
		r.SetColorProfile(termenv.TrueColor)
	}

	enc := colour.Encode(c)
	res := refs.Evaluate(c)

	base := r.NewStyle().
		Background(lipgloss.Color(enc.Hex)).
		Width(cardWidth).
		Padding(0, 1)

	lines := []string{
		base.Foreground(lipgloss.Color(colour.Hex(colour.LegibleText(c)))).Bold(true).Render(enc.Hex),
	}
	refColours := refs.Colours()
	for i, slot := range res.Slots() {
		style := base.Foreground(lipgloss.Color(colour.Hex(refColours[i])))
		if !slot.Visible {
			style = style.Strikethrough(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("Aa %-5s %6s", slot.Reference, slot.Text)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
