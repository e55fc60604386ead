package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Backup is a snapshot of a save file's bytes taken before it was
// overwritten.
type Backup struct {
	ID        uuid.UUID `json:"id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	Data      []byte    `json:"data"`
}

// BackupInfo describes a backup without its payload.
type BackupInfo struct {
	ID        uuid.UUID `json:"id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	Size      int       `json:"size"`
}

// Info returns the backup's metadata.
func (b *Backup) Info() BackupInfo {
	return BackupInfo{ID: b.ID, Path: b.Path, CreatedAt: b.CreatedAt, Size: len(b.Data)}
}

// NewBackup snapshots data for path with a fresh ID.
func NewBackup(path string, data []byte) *Backup {
	return &Backup{
		ID:        uuid.New(),
		Path:      path,
		CreatedAt: time.Now().UTC(),
		Data:      append([]byte(nil), data...),
	}
}

// Storage defines the backup store used before a save file is overwritten
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Backup operations. LoadBackup returns nil, nil when id is unknown or
	// expired.
	SaveBackup(ctx context.Context, b *Backup) error
	LoadBackup(ctx context.Context, id uuid.UUID) (*Backup, error)
	DeleteBackup(ctx context.Context, id uuid.UUID) error

	// ListBackups returns live backups, newest first.
	ListBackups(ctx context.Context) ([]BackupInfo, error)
}
