package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/balatro-meta/pkg/storage"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	store, err := NewRedisStorage(context.Background(), "redis://"+mr.Addr(), ttl, logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
		mr.Close()
	})
	return store, mr
}

func backupAt(path string, data string, at time.Time) *storage.Backup {
	b := storage.NewBackup(path, []byte(data))
	b.CreatedAt = at
	return b
}

func TestRedisStorage_SaveAndLoad(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	b := storage.NewBackup("/saves/1/meta.jkr", []byte{0x01, 0x02, 0xff})
	require.NoError(t, store.SaveBackup(ctx, b))

	assert.True(t, mr.Exists("backup:"+b.ID.String()))
	assert.Equal(t, time.Hour, mr.TTL("backup:"+b.ID.String()))

	loaded, err := store.LoadBackup(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, b.ID, loaded.ID)
	assert.Equal(t, b.Path, loaded.Path)
	assert.Equal(t, b.Data, loaded.Data)
	assert.True(t, b.CreatedAt.Equal(loaded.CreatedAt))
}

func TestRedisStorage_LoadMissing(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)

	loaded, err := store.LoadBackup(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStorage_ListNewestFirst(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := backupAt("a.jkr", "old", base)
	newer := backupAt("b.jkr", "newer!", base.Add(time.Minute))
	require.NoError(t, store.SaveBackup(ctx, older))
	require.NoError(t, store.SaveBackup(ctx, newer))

	list, err := store.ListBackups(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, 6, list[0].Size)
	assert.Equal(t, older.ID, list[1].ID)
	assert.Equal(t, "a.jkr", list[1].Path)
}

func TestRedisStorage_ExpiredBackupsArePruned(t *testing.T) {
	store, mr := setupTestRedis(t, time.Minute)
	ctx := context.Background()

	b := storage.NewBackup("meta.jkr", []byte("x"))
	require.NoError(t, store.SaveBackup(ctx, b))

	mr.FastForward(2 * time.Minute)

	list, err := store.ListBackups(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	members, err := mr.ZMembers(backupIndexKey)
	if err == nil {
		assert.Empty(t, members)
	}

	loaded, err := store.LoadBackup(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStorage_Delete(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	b := storage.NewBackup("meta.jkr", []byte("x"))
	require.NoError(t, store.SaveBackup(ctx, b))
	require.NoError(t, store.DeleteBackup(ctx, b.ID))

	assert.False(t, mr.Exists("backup:"+b.ID.String()))
	list, err := store.ListBackups(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRedisStorage_SaveNil(t *testing.T) {
	store, _ := setupTestRedis(t, time.Hour)
	assert.Error(t, store.SaveBackup(context.Background(), nil))
}

func TestNewRedisStorage_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ctx := context.Background()

	t.Run("bad url", func(t *testing.T) {
		_, err := NewRedisStorage(ctx, "not a url", time.Hour, logger)
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		mr := miniredis.RunT(t)
		_, err := NewRedisStorage(ctx, "redis://"+mr.Addr(), 0, logger)
		assert.Error(t, err)
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		_, err := NewRedisStorage(ctx, "redis://"+addr, time.Hour, logger)
		assert.Error(t, err)
	})
}
