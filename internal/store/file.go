package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"context"

	"flashdeck/internal/domain"
)

// FileStore implements domain.Store with one JSON document per key under a
// data directory. This is the default backend: durable, dependency-free, and
// inspectable with a text editor.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: data directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves the document stored at key. It translates a missing file to
// domain.ErrKeyNotFound.
func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrKeyNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Set writes the document via a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
func (s *FileStore) Set(_ context.Context, key string, value string) error {
	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// Delete removes the document at key. A missing file is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Ping verifies the data directory is still writable.
func (s *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("file store: %s is not a directory", s.dir)
	}
	return nil
}

// Close implements domain.Store; the file store holds no open resources.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys are namespaced with ':' which is not portable in filenames.
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}
