package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk/internal/store"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// backends returns every store implementation under test, each rooted in
// its own temporary directory.
func backends(t *testing.T) map[string]store.Store {
	t.Helper()

	fileStore, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	sqliteStore, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	stores := map[string]store.Store{
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
	t.Cleanup(func() {
		for _, st := range stores {
			_ = st.Close()
		}
	})
	return stores
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			want := record{Name: "bench", Count: 3}
			require.NoError(t, st.Save("members/test", want))

			var got record
			require.NoError(t, st.Load("members/test", &got))
			assert.Equal(t, want, got)
		})
	}
}

func TestSaveReplacesPriorContent(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Save("k", record{Name: "old", Count: 1}))
			require.NoError(t, st.Save("k", record{Name: "new", Count: 2}))

			var got record
			require.NoError(t, st.Load("k", &got))
			assert.Equal(t, record{Name: "new", Count: 2}, got)
		})
	}
}

func TestLoadMissingKey(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var got record
			err := st.Load("no/such/key", &got)
			assert.ErrorIs(t, err, store.ErrNotFound)
		})
	}
}

func TestExists(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ok, err := st.Exists("gym")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, st.Save("gym", record{}))
			ok, err = st.Exists("gym")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestSaveText(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.SaveText("records/jana_record.txt", "BENCH = 70\n"))
			// Text keys hold opaque documents, not JSON.
			var got record
			err := st.Load("records/jana_record.txt", &got)
			assert.Error(t, err)
		})
	}
}

func TestFileStoreCorruptValue(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "gym.json"), []byte("{not json"), 0o644))

	var got record
	err = st.Load("gym", &got)
	assert.ErrorIs(t, err, store.ErrCorrupt)
}

func TestSQLiteStoreCorruptValue(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.SaveText("gym", "{not json"))

	var got record
	err = st.Load("gym", &got)
	assert.ErrorIs(t, err, store.ErrCorrupt)
}

func TestFileStoreWritesAreAtomicallyVisible(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, st.Save("members/karel", record{Name: "karel"}))

	// No temp artifacts survive a completed save.
	entries, err := os.ReadDir(filepath.Join(dir, "members"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "karel.json", entries[0].Name())
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Save("gym", record{Name: "iron", Count: 7}))
	require.NoError(t, st.Close())

	st, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer st.Close()

	var got record
	require.NoError(t, st.Load("gym", &got))
	assert.Equal(t, record{Name: "iron", Count: 7}, got)
}
