package glyph

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

// Export formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Default raster geometry: cell edge and outer margin in pixels.
const (
	pngCellSize = 24
	pngMargin   = 12
)

// svgCellSize is the cell edge in SVG user units.
const svgCellSize = 10

// background used behind unpainted cells in both exporters.
const backgroundColor = "#faf7f2"

// SVG renders the glyph as a standalone SVG document.
func SVG(a Art) []byte {
	side := GridSize * svgCellSize
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, side, side)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, side, side, backgroundColor)
	b.WriteString("\n")
	for _, c := range a.Cells {
		if !c.Painted {
			continue
		}
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
			c.X*svgCellSize, c.Y*svgCellSize, svgCellSize, svgCellSize, a.Color)
		b.WriteString("\n")
	}
	b.WriteString("</svg>\n")
	return []byte(b.String())
}

// PNG renders the glyph as a PNG image.
func PNG(a Art) ([]byte, error) {
	side := GridSize*pngCellSize + 2*pngMargin
	dc := gg.NewContext(side, side)

	bg, err := parseHex(backgroundColor)
	if err != nil {
		return nil, err
	}
	dc.SetColor(bg)
	dc.Clear()

	accent, err := parseHex(a.Color)
	if err != nil {
		return nil, err
	}
	dc.SetColor(accent)
	for _, c := range a.Cells {
		if !c.Painted {
			continue
		}
		dc.DrawRectangle(
			float64(pngMargin+c.X*pngCellSize),
			float64(pngMargin+c.Y*pngCellSize),
			pngCellSize, pngCellSize)
	}
	dc.Fill()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// parseHex parses a "#rrggbb" color.
func parseHex(s string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
