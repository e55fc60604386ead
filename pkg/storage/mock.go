package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	backups   map[uuid.UUID]*Backup
	pingError error
	saveError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		backups: make(map[uuid.UUID]*Backup),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on SaveBackup with the given error
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveBackup mocks saving a backup
func (m *MockStorage) SaveBackup(ctx context.Context, b *Backup) error {
	if b == nil {
		return errors.New("backup cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	cp := *b
	cp.Data = append([]byte(nil), b.Data...)
	m.backups[b.ID] = &cp
	return nil
}

// LoadBackup mocks loading a backup
func (m *MockStorage) LoadBackup(ctx context.Context, id uuid.UUID) (*Backup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, exists := m.backups[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	cp := *b
	return &cp, nil
}

// DeleteBackup mocks deleting a backup
func (m *MockStorage) DeleteBackup(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.backups, id)
	return nil
}

// ListBackups mocks listing backups, newest first
func (m *MockStorage) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]BackupInfo, 0, len(m.backups))
	for _, b := range m.backups {
		out = append(out, b.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
