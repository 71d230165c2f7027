package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chat-client/v2/internal/config"
	"github.com/spf13/afero"
)

// ErrNotFound is returned by GetItem when the key has no value.
var ErrNotFound = errors.New("item not found")

// Store is a durable key/value store for client-side state such as the auth token.
type Store interface {
	SetItem(key, value string) error
	GetItem(key string) (string, error)
	RemoveItem(key string) error
	Close() error
}

// OpenStore opens the token store backend selected in cfg under cfg.DataDir.
func OpenStore(cfg *config.Config) (Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	switch cfg.TokenStore {
	case config.StoreFile:
		return NewFileStore(afero.NewOsFs(), cfg.DataDir), nil
	case config.StoreSQLite:
		db := NewDatabase(filepath.Join(cfg.DataDir, "chat_client.db"))
		if err := db.Connect(); err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown token store %q", cfg.TokenStore)
	}
}
