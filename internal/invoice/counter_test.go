package invoice

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileCounterDefaultsWhenAbsent(t *testing.T) {
	store := NewFileCounterStore(filepath.Join(t.TempDir(), "counter.txt"), 0)
	require.Equal(t, 1001, store.Load(context.Background()))
}

func TestFileCounterDefaultsWhenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	for _, raw := range []string{"", "not-a-number", "-5", "12.7"} {
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
		store := NewFileCounterStore(path, 0)
		require.Equal(t, 1001, store.Load(context.Background()), "raw=%q", raw)
	}
}

func TestFileCounterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	store := NewFileCounterStore(path, 0)
	require.NoError(t, store.Save(context.Background(), 1002))
	require.Equal(t, 1002, store.Load(context.Background()))

	// a fresh store sees the persisted value
	require.Equal(t, 1002, NewFileCounterStore(path, 0).Load(context.Background()))
}

func TestFileCounterToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.txt")
	require.NoError(t, os.WriteFile(path, []byte(" 1203\n"), 0o644))
	store := NewFileCounterStore(path, 0)
	require.Equal(t, 1203, store.Load(context.Background()))
}

func TestFileCounterSaveFailureSurfaces(t *testing.T) {
	store := NewFileCounterStore(filepath.Join(t.TempDir(), "missing", "nested", "counter.txt"), 0)
	require.Error(t, store.Save(context.Background(), 1002))
}

func TestFileCounterCustomSeed(t *testing.T) {
	store := NewFileCounterStore(filepath.Join(t.TempDir(), "counter.txt"), 5000)
	require.Equal(t, 5000, store.Load(context.Background()))
}

func TestMemoryCounter(t *testing.T) {
	store := NewMemoryCounterStore(0)
	require.Equal(t, 1001, store.Load(context.Background()))
	require.NoError(t, store.Save(context.Background(), 1002))
	require.Equal(t, 1002, store.Load(context.Background()))
}
