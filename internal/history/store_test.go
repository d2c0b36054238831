package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "history.yaml")
	store := NewStore(path)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(Entry{Query: "bar", Mode: "bolt", Source: "main.go"}))

	entry, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Entry{Query: "bar", Mode: "bolt", Source: "main.go", SavedAt: fixed}, entry)
}

func TestStoreIgnoresEmptyQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.yaml")
	store := NewStore(path)

	require.NoError(t, store.Save(Entry{Mode: "default"}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStoreOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "history.yaml"))
	require.NoError(t, store.Save(Entry{Query: "first"}))
	require.NoError(t, store.Save(Entry{Query: "second"}))

	entry, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", entry.Query)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(store.Path()), ".history-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query: [unterminated"), 0o600))

	_, _, err := NewStore(path).Load()
	require.Error(t, err)
}
