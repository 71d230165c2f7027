package core

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/chat-client/v2/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()
	db := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, db.Connect())
	t.Cleanup(func() { db.Close() })
	return db
}

func newMemFileStore(t *testing.T) Store {
	t.Helper()
	return NewFileStore(afero.NewMemMapFs(), "/home/user/.chat-client")
}

func TestStores(t *testing.T) {
	backends := map[string]func(*testing.T) Store{
		"sqlite": newSQLiteStore,
		"file":   newMemFileStore,
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			store := open(t)

			_, err := store.GetItem("token")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.SetItem("token", "abc123"))
			got, err := store.GetItem("token")
			require.NoError(t, err)
			assert.Equal(t, "abc123", got)

			require.NoError(t, store.SetItem("token", "rotated"))
			got, err = store.GetItem("token")
			require.NoError(t, err)
			assert.Equal(t, "rotated", got)

			require.NoError(t, store.RemoveItem("token"))
			_, err = store.GetItem("token")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, store.RemoveItem("token"), "removing a missing item is not an error")
		})
	}
}

func TestFileStore_Layout(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewFileStore(memFs, "/data")
	require.NoError(t, store.SetItem("token", "abc123"))

	info, err := memFs.Stat("/data/.token")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestDatabase_PersistsAcrossConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	first := NewDatabase(path)
	require.NoError(t, first.Connect())
	require.NoError(t, first.SetItem("token", "durable"))
	require.NoError(t, first.Close())

	second := NewDatabase(path)
	require.NoError(t, second.Connect())
	defer second.Close()

	got, err := second.GetItem("token")
	require.NoError(t, err)
	assert.Equal(t, "durable", got)
}

func TestDatabase_UpgradesOldSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE TABLE storage (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO storage (key, value) VALUES ('token', 'legacy')`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	db := NewDatabase(path)
	require.NoError(t, db.Connect())
	defer db.Close()

	got, err := db.GetItem("token")
	require.NoError(t, err)
	assert.Equal(t, "legacy", got)
	assert.NoError(t, db.SetItem("token", "fresh"))
}

func TestOpenStore(t *testing.T) {
	for _, backend := range []string{config.StoreSQLite, config.StoreFile} {
		t.Run(backend, func(t *testing.T) {
			cfg := &config.Config{DataDir: filepath.Join(t.TempDir(), "nested"), TokenStore: backend}
			store, err := OpenStore(cfg)
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.SetItem("token", "abc"))
			got, err := store.GetItem("token")
			require.NoError(t, err)
			assert.Equal(t, "abc", got)
		})
	}

	_, err := OpenStore(&config.Config{DataDir: t.TempDir(), TokenStore: "redis"})
	assert.Error(t, err)
}
