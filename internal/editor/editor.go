// Package editor ties the meta codec to files on disk and to the backup
// store: open a save, change it, and write it back after snapshotting the
// bytes it replaces.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jwebster45206/balatro-meta/internal/logger"
	"github.com/jwebster45206/balatro-meta/pkg/compress"
	"github.com/jwebster45206/balatro-meta/pkg/meta"
	"github.com/jwebster45206/balatro-meta/pkg/storage"
)

// ErrBackupNotFound is returned by Restore for an unknown or expired ID.
var ErrBackupNotFound = errors.New("backup not found")

// Editor opens and writes meta saves. Store may be nil, in which case
// nothing is backed up.
type Editor struct {
	store  storage.Storage
	level  int
	logger *slog.Logger
}

// New returns an editor writing at the given compression level.
func New(store storage.Storage, level int, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	return &Editor{store: store, level: level, logger: log}
}

// Session is one opened save. Meta is edited in place by the caller.
type Session struct {
	Path string
	Meta *meta.Meta

	loaded *meta.Meta
}

// Changes returns the sorted names edited since the session was opened.
func (s *Session) Changes() []string {
	return s.loaded.Diff(s.Meta)
}

// Dirty reports whether anything was edited.
func (s *Session) Dirty() bool {
	return !s.loaded.Equal(s.Meta)
}

// Open reads and decodes the save at path.
func (e *Editor) Open(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	log := logger.WithPath(e.logger, path)
	m, err := meta.Load(data)
	if err != nil {
		logger.WithError(log, err).Warn("Failed to load save")
		return nil, err
	}

	log.Debug("Save loaded", "items", m.Len(), "modded", len(m.Modded()))
	return &Session{Path: path, Meta: m, loaded: m.Clone()}, nil
}

// NewSession starts from a fresh profile. Nothing is read from path.
func (e *Editor) NewSession(path string) *Session {
	m := meta.Default()
	return &Session{Path: path, Meta: m, loaded: m.Clone()}
}

// ReadText inflates the file at path without decoding it.
func (e *Editor) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read save: %w", err)
	}
	text, err := compress.Decompress(data)
	if err != nil {
		return "", fmt.Errorf("failed to inflate %s: %w", path, err)
	}
	return text, nil
}

// Save encodes the session and writes it to s.Path. It returns the ID of
// the backup taken of the previous file, or uuid.Nil when none was taken.
func (e *Editor) Save(ctx context.Context, s *Session) (uuid.UUID, error) {
	data, err := meta.SaveLevel(s.Meta, e.level)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := e.WriteFile(ctx, s.Path, data)
	if err != nil {
		return id, err
	}

	s.loaded = s.Meta.Clone()
	return id, nil
}

// WriteFile replaces path with data, backing up the existing file first.
// A failed backup aborts the write.
func (e *Editor) WriteFile(ctx context.Context, path string, data []byte) (uuid.UUID, error) {
	id, err := e.backup(ctx, path)
	if err != nil {
		return uuid.Nil, err
	}

	log := logger.WithPath(e.logger, path)
	if err := writeAtomic(path, data); err != nil {
		logger.WithError(log, err).Error("Failed to write save")
		return id, fmt.Errorf("failed to write save: %w", err)
	}

	log.Info("Save written", "bytes", len(data), "backup_id", id)
	return id, nil
}

func (e *Editor) backup(ctx context.Context, path string) (uuid.UUID, error) {
	if e.store == nil {
		return uuid.Nil, nil
	}

	prev, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read existing save: %w", err)
	}

	b := storage.NewBackup(path, prev)
	if err := e.store.SaveBackup(ctx, b); err != nil {
		logger.WithError(logger.WithPath(e.logger, path), err).Error("Failed to back up save")
		return uuid.Nil, fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return b.ID, nil
}

// Backups lists stored backups, newest first.
func (e *Editor) Backups(ctx context.Context) ([]storage.BackupInfo, error) {
	if e.store == nil {
		return nil, errors.New("backups are not configured")
	}
	return e.store.ListBackups(ctx)
}

// Restore writes backup id to path, or to the path it was taken from when
// path is empty. The file being replaced is itself backed up.
func (e *Editor) Restore(ctx context.Context, id uuid.UUID, path string) (string, error) {
	if e.store == nil {
		return "", errors.New("backups are not configured")
	}

	b, err := e.store.LoadBackup(ctx, id)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", fmt.Errorf("%w: %s", ErrBackupNotFound, id)
	}

	if path == "" {
		path = b.Path
	}
	if _, err := e.WriteFile(ctx, path, b.Data); err != nil {
		return "", err
	}
	return path, nil
}

// DeleteBackup removes backup id from the store.
func (e *Editor) DeleteBackup(ctx context.Context, id uuid.UUID) error {
	if e.store == nil {
		return errors.New("backups are not configured")
	}

	b, err := e.store.LoadBackup(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("%w: %s", ErrBackupNotFound, id)
	}
	if err := e.store.DeleteBackup(ctx, id); err != nil {
		return err
	}

	e.logger.Info("Backup deleted", "backup_id", id, "path", b.Path)
	return nil
}

// writeAtomic replaces path through a temp file in the same directory. An
// existing file keeps its permission bits; a new one is created 0644.
func writeAtomic(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
