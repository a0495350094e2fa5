package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileQuantitiesEmptyWhenAbsent(t *testing.T) {
	store := NewFileQuantityStore(filepath.Join(t.TempDir(), "quantities.json"))
	require.Empty(t, store.Load(context.Background()))
}

func TestFileQuantitiesEmptyWhenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quantities.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	store := NewFileQuantityStore(path)
	require.Empty(t, store.Load(context.Background()))
}

func TestFileQuantitiesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quantities.json")
	store := NewFileQuantityStore(path)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, map[string]int{"A1": 2, "B1": 5}))
	require.Equal(t, map[string]int{"A1": 2, "B1": 5}, store.Load(ctx))

	// a fresh store sees the persisted map
	require.Equal(t, map[string]int{"A1": 2, "B1": 5}, NewFileQuantityStore(path).Load(ctx))
}

func TestFileQuantitiesSaveFailureSurfaces(t *testing.T) {
	store := NewFileQuantityStore(filepath.Join(t.TempDir(), "missing", "nested", "quantities.json"))
	require.Error(t, store.Save(context.Background(), map[string]int{"A1": 1}))
}

func TestMemoryQuantities(t *testing.T) {
	store := NewMemoryQuantityStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, map[string]int{"A1": 3}))

	loaded := store.Load(ctx)
	require.Equal(t, 3, loaded["A1"])

	// mutating the returned map must not leak into the store
	loaded["A1"] = 99
	require.Equal(t, 3, store.Load(ctx)["A1"])
}
