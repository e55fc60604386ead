package editor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/balatro-meta/pkg/compress"
	"github.com/jwebster45206/balatro-meta/pkg/meta"
	"github.com/jwebster45206/balatro-meta/pkg/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeSave(t *testing.T, dir, text string) string {
	t.Helper()
	data, err := compress.Compress(text)
	require.NoError(t, err)
	path := filepath.Join(dir, "meta.jkr")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestEditor_OpenEditSave(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir, `return {["alerted"]={["x_fooitem"]=true,},["discovered"]={},["unlocked"]={},}`)
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	store := storage.NewMockStorage()
	ed := New(store, compress.DefaultLevel, testLogger())

	s, err := ed.Open(path)
	require.NoError(t, err)
	assert.False(t, s.Dirty())
	assert.Equal(t, []string{"x_fooitem"}, s.Meta.Modded())

	n := meta.UnlockAll(s.Meta, "j_")
	assert.Equal(t, 150, n)
	assert.True(t, s.Dirty())
	assert.Contains(t, s.Changes(), "j_blueprint")

	id, err := ed.Save(context.Background(), s)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.False(t, s.Dirty())

	b, err := store.LoadBackup(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, original, b.Data)
	assert.Equal(t, path, b.Path)

	reopened, err := ed.Open(path)
	require.NoError(t, err)
	assert.True(t, reopened.Meta.Equal(s.Meta))
	it, _ := reopened.Meta.Item("j_blueprint")
	assert.True(t, it.Unlocked)
}

func TestEditor_OpenErrors(t *testing.T) {
	dir := t.TempDir()
	ed := New(nil, compress.DefaultLevel, testLogger())

	_, err := ed.Open(filepath.Join(dir, "missing.jkr"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "garbage.jkr")
	require.NoError(t, os.WriteFile(garbage, []byte{0xff, 0xff, 0xff}, 0o644))
	_, err = ed.Open(garbage)
	assert.ErrorIs(t, err, meta.ErrCorruptStream)

	profile := writeSave(t, dir, `return {["career_stats"]={},}`)
	_, err = ed.Open(profile)
	assert.ErrorIs(t, err, meta.ErrMissingSubtable)
	assert.Equal(t, "not a recognized save kind", meta.UserMessage(err))
}

func TestEditor_NewSessionWithoutStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.jkr")
	ed := New(nil, 9, testLogger())

	s := ed.NewSession(path)
	id, err := ed.Save(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	s2, err := ed.Open(path)
	require.NoError(t, err)
	assert.True(t, s2.Meta.Equal(meta.Default()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	_, err = ed.Backups(context.Background())
	assert.Error(t, err)
}

func TestEditor_NoBackupForNewFile(t *testing.T) {
	store := storage.NewMockStorage()
	ed := New(store, compress.DefaultLevel, testLogger())

	id, err := ed.WriteFile(context.Background(), filepath.Join(t.TempDir(), "new.jkr"), []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	list, err := ed.Backups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEditor_FailedBackupAbortsWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir, `return {["alerted"]={},["discovered"]={},["unlocked"]={},}`)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	store := storage.NewMockStorage()
	store.SetSaveError(errors.New("redis down"))
	ed := New(store, compress.DefaultLevel, testLogger())

	_, err = ed.WriteFile(context.Background(), path, []byte("replacement"))
	require.Error(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEditor_Restore(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir, `return {["alerted"]={["x_old"]=true,},["discovered"]={},["unlocked"]={},}`)

	store := storage.NewMockStorage()
	ed := New(store, compress.DefaultLevel, testLogger())
	ctx := context.Background()

	s, err := ed.Open(path)
	require.NoError(t, err)
	meta.UnlockAll(s.Meta, "")
	id, err := ed.Save(ctx, s)
	require.NoError(t, err)

	restored, err := ed.Restore(ctx, id, "")
	require.NoError(t, err)
	assert.Equal(t, path, restored)

	s2, err := ed.Open(path)
	require.NoError(t, err)
	it, ok := s2.Meta.Item("x_old")
	require.True(t, ok)
	assert.Equal(t, [3]bool{true, false, false}, [3]bool{it.Alerted, it.Discovered, it.Unlocked})

	list, err := ed.Backups(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2, "restoring backs up the file it replaces")

	_, err = ed.Restore(ctx, uuid.New(), path)
	assert.ErrorIs(t, err, ErrBackupNotFound)
}

func TestEditor_ReadText(t *testing.T) {
	dir := t.TempDir()
	text := `return {["alerted"]={},["discovered"]={},["unlocked"]={},}`
	path := writeSave(t, dir, text)

	ed := New(nil, compress.DefaultLevel, nil)
	got, err := ed.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, text, got)

	bad := filepath.Join(dir, "bad.jkr")
	require.NoError(t, os.WriteFile(bad, []byte{0xff}, 0o644))
	_, err = ed.ReadText(bad)
	assert.ErrorIs(t, err, compress.ErrCorruptStream)
}

func TestEditor_WriteKeepsFileMode(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir, `return {["alerted"]={},["discovered"]={},["unlocked"]={},}`)
	require.NoError(t, os.Chmod(path, 0o600))

	ed := New(nil, compress.DefaultLevel, testLogger())
	_, err := ed.WriteFile(context.Background(), path, []byte("replacement"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	fresh := filepath.Join(dir, "new.jkr")
	_, err = ed.WriteFile(context.Background(), fresh, []byte("data"))
	require.NoError(t, err)
	info, err = os.Stat(fresh)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestEditor_DeleteBackup(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir, `return {["alerted"]={},["discovered"]={},["unlocked"]={},}`)

	store := storage.NewMockStorage()
	ed := New(store, compress.DefaultLevel, testLogger())
	ctx := context.Background()

	id, err := ed.WriteFile(ctx, path, []byte("replacement"))
	require.NoError(t, err)

	require.NoError(t, ed.DeleteBackup(ctx, id))
	list, err := ed.Backups(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, ed.DeleteBackup(ctx, id), ErrBackupNotFound)
	assert.Error(t, New(nil, compress.DefaultLevel, nil).DeleteBackup(ctx, id))
}

func TestEditor_LogsPathAndError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.jkr")
	require.NoError(t, os.WriteFile(path, []byte{0xff}, 0o644))

	var buf bytes.Buffer
	ed := New(nil, compress.DefaultLevel, slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := ed.Open(path)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Failed to load save")
	assert.Contains(t, buf.String(), "path="+path)
	assert.Contains(t, buf.String(), "error=")
}
