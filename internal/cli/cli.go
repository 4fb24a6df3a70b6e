// Package cli implements the daygrid command-line interface.
//
// This package provides commands for writing the daily entry, browsing past
// days, exporting the deterministic daily glyph, managing the entry store
// and running the local HTTP API. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lukaswerner/daygrid/pkg/buildinfo"
	"github.com/lukaswerner/daygrid/pkg/config"
	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/journal"
)

// appName is the application name used for directories and display.
const appName = "daygrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// clock is swappable so command tests can pin the calendar.
	clock journal.Clock
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		clock:  journal.SystemClock(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Daygrid keeps one thought and one generated glyph per day",
		Long:         `Daygrid is a daily journal: one short entry per calendar day, paired with a deterministic generative glyph keyed to the date. Today is editable until submitted; every past day is read-only.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(appName)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.journalCommand())
	root.AddCommand(c.writeCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.artCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newStore opens the entry store selected by configuration.
func (c *CLI) newStore(ctx context.Context) (journal.Store, error) {
	switch c.Config.Store.Backend {
	case config.BackendFile:
		return journal.NewFileStore(c.Config.Store.Path)
	case config.BackendRedis:
		return journal.NewRedisStore(ctx, journal.RedisConfig{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
	case config.BackendMongo:
		return journal.NewMongoStore(ctx, journal.MongoConfig{
			URI:      c.Config.Mongo.URI,
			Database: c.Config.Mongo.Database,
		})
	case config.BackendMemory:
		return journal.NewMemoryStore(), nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown store backend %q", c.Config.Store.Backend)
	}
}

// newSession opens the store and loads a day-policy session.
func (c *CLI) newSession(ctx context.Context) (*journal.Session, journal.Store, error) {
	store, err := c.newStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	session, err := journal.NewSession(ctx, store, c.clock)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return session, store, nil
}

// resolveDate turns an optional positional date argument into a DateKey,
// defaulting to today.
func (c *CLI) resolveDate(args []string) (journal.DateKey, error) {
	if len(args) == 0 {
		return journal.KeyFor(c.clock.Now()), nil
	}
	key := journal.DateKey(args[0])
	if _, err := journal.ParseKey(key); err != nil {
		return "", err
	}
	return key, nil
}
