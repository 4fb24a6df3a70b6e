package cli

import (
	"github.com/spf13/cobra"

	"github.com/lukaswerner/daygrid/internal/server"
)

// serveCommand creates the serve command for running the local HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP API",
		Long: `Run the local HTTP API.

Serves the journal over HTTP: listing entries, reading single days,
submitting today's entry and rendering glyphs as JSON, SVG or PNG. The
server shares the configured store with the CLI, so concurrent
submissions for the same day are resolved by the store, first writer
wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if addr == "" {
				addr = c.Config.Serve.Addr
			}

			srv := server.New(store, c.clock, c.Logger)
			c.Logger.Info("serving API", "addr", addr, "backend", store.Backend())
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to configuration)")
	return cmd
}
