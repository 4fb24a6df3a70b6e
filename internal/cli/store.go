package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukaswerner/daygrid/pkg/config"
	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/journal"
)

// storeCommand creates the store command group for entry store management.
// There is deliberately no "clear": submitted days are permanent.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the entry store",
	}

	cmd.AddCommand(c.storePathCommand())
	cmd.AddCommand(c.storeExportCommand())
	cmd.AddCommand(c.storeImportCommand())

	return cmd
}

// storePathCommand shows where entries live.
func (c *CLI) storePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the store location",
		RunE: func(cmd *cobra.Command, args []string) error {
			printKeyValue("backend", c.Config.Store.Backend)
			switch c.Config.Store.Backend {
			case config.BackendFile:
				store, err := journal.NewFileStore(c.Config.Store.Path)
				if err != nil {
					return err
				}
				defer store.Close()
				printKeyValue("path", store.Path())
			case config.BackendRedis:
				printKeyValue("addr", c.Config.Redis.Addr)
			case config.BackendMongo:
				printKeyValue("uri", c.Config.Mongo.URI)
				printKeyValue("database", c.Config.Mongo.Database)
			}
			return nil
		},
	}
}

// storeExportCommand writes all entries to a snapshot file.
func (c *CLI) storeExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all entries to a snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			p := newProgress(c.Logger)
			snap, err := journal.ExportSnapshot(cmd.Context(), store, c.clock)
			if err != nil {
				return err
			}
			data, err := snap.Marshal()
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("%s-snapshot-%s.json", appName, snap.ExportedAt.Format("2006-01-02"))
			}
			if err := errors.ValidateOutputPath(path); err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o600); err != nil {
				return errors.Wrap(errors.ErrCodeStore, err, "write snapshot %s", path)
			}

			p.done(fmt.Sprintf("Exported %d day(s)", len(snap.Entries)))
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file path")
	return cmd
}

// storeImportCommand merges a snapshot file into the store. Existing days
// always win; an import never rewrites history.
func (c *CLI) storeImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <snapshot.json>",
		Short: "Import entries from a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "read snapshot %s", args[0])
			}
			snap, err := journal.ParseSnapshot(data)
			if err != nil {
				return err
			}

			store, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			p := newProgress(c.Logger)
			imported, err := journal.ImportSnapshot(cmd.Context(), store, snap)
			if err != nil {
				return err
			}

			if imported == 0 {
				printInfo("nothing to import — all days already present")
				return nil
			}
			p.done(fmt.Sprintf("Imported %d day(s)", imported))
			return nil
		},
	}
}
