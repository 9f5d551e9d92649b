package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renatNoore/to-do-app/internal/todo"
)

func TestBackends_GetSet(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			ctx := context.Background()
			b, err := Open(ctx, kind, t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { _ = b.Close() })

			_, ok, err := b.Get(ctx, DefaultKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, b.Set(ctx, DefaultKey, []byte(`["one"]`)))
			require.NoError(t, b.Set(ctx, DefaultKey, []byte(`["two"]`)))

			v, ok, err := b.Get(ctx, DefaultKey)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `["two"]`, string(v))
		})
	}
}

func TestOpen_UnknownKind(t *testing.T) {
	_, err := Open(context.Background(), "redis", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestFileBackend_KeyToFileName(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, b.Set(context.Background(), "todo-app:v1", []byte("[]")))

	_, err = os.Stat(filepath.Join(dir, "todo-app_v1.json"))
	require.NoError(t, err)
}

func TestFileBackend_CorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName(DefaultKey)), []byte("{{{"), 0o644))

	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	assert.Empty(t, NewAdapter(b).Load(context.Background()))
}

func TestSQLiteBackend_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	NewAdapter(first).Save(ctx, todo.Collection{{ID: "a", Text: "Buy milk", CreatedAt: 5}})
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got := NewAdapter(second).Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Buy milk", got[0].Text)
	assert.Equal(t, int64(5), got[0].CreatedAt)
}

func TestMemoryBackend_FailWrites(t *testing.T) {
	b := NewMemoryBackend()
	b.FailWrites = true
	err := b.Set(context.Background(), "k", []byte("v"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBadgerBackend_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := OpenBadger(dir)
	require.NoError(t, err)
	NewAdapter(first).Save(ctx, todo.Collection{{ID: "a", Text: "Walk dog", Completed: true}})
	require.NoError(t, first.Close())

	second, err := OpenBadger(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got := NewAdapter(second).Load(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Walk dog", got[0].Text)
	assert.True(t, got[0].Completed)
}
