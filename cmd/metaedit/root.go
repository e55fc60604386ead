package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/balatro-meta/internal/config"
	"github.com/jwebster45206/balatro-meta/internal/editor"
	"github.com/jwebster45206/balatro-meta/internal/logger"
	redisstorage "github.com/jwebster45206/balatro-meta/internal/storage"
	"github.com/jwebster45206/balatro-meta/pkg/meta"
	"github.com/jwebster45206/balatro-meta/pkg/storage"
)

const connectTimeout = 5 * time.Second

type App struct {
	LogLevel string
	RedisURL string

	cfg    *config.Config
	log    *slog.Logger
	store  storage.Storage
	editor *editor.Editor
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "metaedit",
		Short:        "Inspect and edit Balatro meta.jkr saves",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # What does this profile have unlocked?
  metaedit list ~/.local/share/balatro/1/meta.jkr --category jokers

  # Unlock every voucher, keeping a backup of the old file
  REDIS_URL=redis://localhost:6379 metaedit unlock meta.jkr --prefix v_

  # Raw document text
  metaedit dump meta.jkr
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}

	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error); overrides LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&app.RedisURL, "redis-url", "", "Redis URL for backups; overrides REDIS_URL")

	cmd.AddCommand(newDumpCmd(app))
	cmd.AddCommand(newPackCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newUnlockCmd(app))
	cmd.AddCommand(newSetCmd(app))
	cmd.AddCommand(newDefaultsCmd(app))
	cmd.AddCommand(newCatalogCmd(app))
	cmd.AddCommand(newBackupsCmd(app))

	app.closeAfter(cmd)
	return cmd
}

// closeAfter wraps every RunE under c so the store is closed once the
// command returns. PersistentPostRunE is not enough: cobra skips it when
// RunE fails.
func (app *App) closeAfter(c *cobra.Command) {
	for _, sub := range c.Commands() {
		app.closeAfter(sub)
	}
	if c.RunE == nil {
		return
	}
	run := c.RunE
	c.RunE = func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := app.close(); err == nil {
				err = cerr
			}
		}()
		return run(cmd, args)
	}
}

func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if app.LogLevel != "" {
		cfg.LogLevel = config.ParseLogLevel(app.LogLevel)
	}
	if app.RedisURL != "" {
		cfg.RedisURL = app.RedisURL
	}
	app.cfg = cfg
	app.log = logger.New(cmd.ErrOrStderr(), cfg)

	if cfg.BackupsEnabled() {
		ctx, cancel := context.WithTimeout(cmd.Context(), connectTimeout)
		defer cancel()

		store, err := redisstorage.NewRedisStorage(ctx, cfg.RedisURL, cfg.BackupTTL, app.log)
		if err != nil {
			return fmt.Errorf("backup store: %w", err)
		}
		app.store = store
	} else {
		app.log.Debug("Backups disabled, REDIS_URL not set")
	}

	app.editor = editor.New(app.store, cfg.CompressionLevel, app.log)
	return nil
}

func (app *App) close() error {
	if app.store == nil {
		return nil
	}
	err := app.store.Close()
	app.store = nil
	return err
}

// open loads a save and turns codec failures into a message a player can
// act on.
func (app *App) open(path string) (*editor.Session, error) {
	s, err := app.editor.Open(path)
	if err != nil {
		var me *meta.Error
		if errors.As(err, &me) {
			return nil, fmt.Errorf("%s: %s (%w)", path, me.UserMessage(), err)
		}
		return nil, err
	}
	return s, nil
}

// save writes the session and reports where it went.
func (app *App) save(cmd *cobra.Command, s *editor.Session) error {
	id, err := app.editor.Save(cmd.Context(), s)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote %s\n", s.Path)
	if id != uuid.Nil {
		fmt.Fprintf(out, "backup %s\n", id)
	}
	return nil
}
