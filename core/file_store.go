package core

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStore keeps each item in its own dot-file under dir.
type FileStore struct {
	fs  afero.Fs
	dir string
}

func NewFileStore(fsys afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fsys, dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, "."+filepath.Base(key))
}

func (s *FileStore) SetItem(key, value string) error {
	if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", s.dir, err)
	}
	// Readable and writable only by the user.
	if err := afero.WriteFile(s.fs, s.path(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path(key), err)
	}
	return nil
}

func (s *FileStore) GetItem(key string) (string, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path(key), err)
	}
	return string(data), nil
}

func (s *FileStore) RemoveItem(key string) error {
	err := s.fs.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", s.path(key), err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
