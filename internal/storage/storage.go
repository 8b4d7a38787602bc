// Package storage provides the key-value stores td persists to.
package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

const (
	// storeDir is the subdirectory holding one file per key.
	storeDir = "store"
	// valueExt is the extension of value files.
	valueExt = ".json"
)

// Storage is a key-value store backed by a data directory.
// Each key is a file under <dir>/store/.
type Storage struct {
	root string // the data directory
}

// Open returns a Storage for the given data directory, creating the
// directory structure if it does not exist.
func Open(dir string) (*Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory not set")
	}
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("%s is not a directory", dir)
	case err != nil && !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}

	if err := os.MkdirAll(filepath.Join(dir, storeDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", filepath.Join(dir, storeDir), err)
	}
	return &Storage{root: dir}, nil
}

// keyPath returns the file holding key. Keys are path-escaped so any
// string is a valid key.
func (s *Storage) keyPath(key string) string {
	return filepath.Join(s.root, storeDir, url.PathEscape(key)+valueExt)
}

// Get returns the value stored under key.
func (s *Storage) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set stores value under key. The write is atomic: readers see either the
// previous value or the new one.
func (s *Storage) Set(key, value string) error {
	path := s.keyPath(key)
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
