package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lukaswerner/daygrid/pkg/glyph"
)

// Terminal cells are roughly twice as tall as wide; two characters per grid
// cell keeps the glyph square on screen.
const cellGlyph = "██"

// emptyGlyph is what an unpainted cell renders as.
const emptyGlyph = "··"

// renderGlyph renders the glyph grid as colored terminal text.
func renderGlyph(art glyph.Art) string {
	painted := lipgloss.NewStyle().Foreground(lipgloss.Color(art.Color))
	empty := StyleDim

	var b strings.Builder
	for y := 0; y < glyph.GridSize; y++ {
		for x := 0; x < glyph.GridSize; x++ {
			if art.Cells[y*glyph.GridSize+x].Painted {
				b.WriteString(painted.Render(cellGlyph))
			} else {
				b.WriteString(empty.Render(emptyGlyph))
			}
		}
		if y < glyph.GridSize-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// glyphCaption summarizes a glyph in one line.
func glyphCaption(key string, art glyph.Art) string {
	return StyleDim.Render(key+"  ·  ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(art.Color)).Render("■ "+art.Color)
}
