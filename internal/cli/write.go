package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lukaswerner/daygrid/pkg/errors"
)

// writeCommand creates the non-interactive write command.
func (c *CLI) writeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "write [text]",
		Short: "Submit today's entry",
		Long: `Submit today's entry without opening the interactive journal.

The entry text is taken from the argument, or read from stdin when no
argument is given. A day accepts exactly one entry; once submitted it is
locked for good.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := entryText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			session, store, err := c.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := session.Submit(cmd.Context(), text); err != nil {
				if errors.Is(err, errors.ErrCodeDayLocked) {
					printWarning("today (%s) already has an entry", session.Today())
					return err
				}
				return err
			}

			printSuccess("saved entry for %s", session.Today())
			printDetail("%d day(s) recorded", len(session.Entries()))
			return nil
		},
	}
}

// entryText resolves the submission text from the argument or stdin.
func entryText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	// Trailing newline from shell heredocs/pipes is not part of the thought.
	return strings.TrimSuffix(string(data), "\n"), nil
}
