package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/glyph"
	"github.com/lukaswerner/daygrid/pkg/observability"
)

// formatANSI renders the glyph to the terminal instead of a file.
const formatANSI = "ansi"

// artCommand creates the art command for exporting a day's glyph.
func (c *CLI) artCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "art [date]",
		Short: "Export a day's glyph",
		Long: `Export the deterministic glyph for a day.

With no argument, exports today's glyph. The glyph depends only on the
date, so exporting works for any day — past, present or future — whether
or not it has an entry.

Formats: ansi (terminal, default), svg, png.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := c.resolveDate(args)
			if err != nil {
				return err
			}
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			if len(formats) > 1 && output != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--output only works with a single format")
			}

			art := glyph.Generate(string(key))
			observability.Glyph().OnGenerate(cmd.Context(), string(key), art.PaintedCount())

			for _, format := range formats {
				if err := c.exportGlyph(string(key), art, format, output); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to daygrid-<date>.<ext>)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): ansi (default), svg, png (comma-separated)")

	return cmd
}

// exportGlyph writes one format to the terminal or a file.
func (c *CLI) exportGlyph(key string, art glyph.Art, format, output string) error {
	if format == formatANSI {
		fmt.Println(renderGlyph(art))
		fmt.Println(glyphCaption(key, art))
		return nil
	}

	var data []byte
	var err error
	switch format {
	case glyph.FormatSVG:
		data = glyph.SVG(art)
	case glyph.FormatPNG:
		data, err = glyph.PNG(art)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}

	path := output
	if path == "" {
		path = fmt.Sprintf("%s-%s.%s", appName, key, format)
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write %s", path)
	}
	printFile(path)
	return nil
}

// parseFormats splits a comma-separated format list, defaulting to ansi.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatANSI}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(strings.ToLower(p)); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}

// validateFormats rejects unknown export formats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case formatANSI, glyph.FormatSVG, glyph.FormatPNG:
		default:
			return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (expected ansi, svg or png)", f)
		}
	}
	return nil
}
