package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lukaswerner/daygrid/pkg/glyph"
	"github.com/lukaswerner/daygrid/pkg/journal"
)

// showCommand creates the show command: one day's glyph and entry.
func (c *CLI) showCommand() *cobra.Command {
	var noArt bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show a day's glyph and entry",
		Long: `Show the glyph and entry for a day.

With no argument, shows today. The glyph is recomputed from the date on
every call; it is never stored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := c.resolveDate(args)
			if err != nil {
				return err
			}

			session, store, err := c.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			art := glyph.Generate(string(key))
			if !noArt {
				fmt.Println(renderGlyph(art))
				fmt.Println(glyphCaption(string(key), art))
				fmt.Println()
			}

			text, submitted := session.Entry(key)
			switch {
			case submitted && text == "":
				printInfo("%s holds an (empty) entry", key)
			case submitted:
				fmt.Println(StyleValue.Render(text))
			case key == session.Today():
				printInfo("today has no entry yet — run %q", appName+" write")
			default:
				printDetail("no entry for %s", key)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noArt, "no-art", false, "print the entry only")
	return cmd
}

// listCommand creates the list command: all recorded days.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded days",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := c.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			entries := session.Entries()
			if len(entries) == 0 {
				printInfo("no entries yet")
				return nil
			}

			keys := make([]string, 0, len(entries))
			for k := range entries {
				keys = append(keys, string(k))
			}
			sort.Strings(keys)

			for _, k := range keys {
				printKeyValue(k, firstLine(entries[journal.DateKey(k)]))
			}
			printDetail("%d day(s) recorded", len(keys))
			return nil
		},
	}
}

// firstLine truncates an entry to a single list row.
func firstLine(text string) string {
	if text == "" {
		return StyleDim.Render("(empty)")
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + " …"
	}
	const maxLen = 72
	if len(text) > maxLen {
		text = text[:maxLen-2] + " …"
	}
	return text
}
