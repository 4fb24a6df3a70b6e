package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lukaswerner/daygrid/pkg/errors"
)

// journalCommand creates the journal command: the interactive TUI.
func (c *CLI) journalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Open the interactive journal",
		Long: `Open the interactive journal.

Shows one day at a time with its glyph. Navigate with the arrow keys;
today is editable until its entry is submitted, after which the day is
locked permanently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, store, err := c.newSession(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			model := NewJournalModel(cmd.Context(), session)
			if _, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run journal")
			}
			return nil
		},
	}
}
