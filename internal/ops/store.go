package ops

import (
	"fmt"

	"github.com/jacksmith/td/internal/model"
)

// DefaultKey is the storage key that holds the task list.
const DefaultKey = "tasks"

// Store is the key-value persistence collaborator.
// The concrete implementations live in package storage.
type Store interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been set.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, overwriting any prior value.
	Set(key, value string) error
}

// LoadTasks reads and decodes the task list stored under key.
// An absent key yields an empty list and no error. A read failure or
// malformed data yields an empty list together with the error, so callers
// can start empty and still report what happened.
func LoadTasks(s Store, key string) (model.TaskList, error) {
	data, ok, err := s.Get(key)
	if err != nil {
		return model.TaskList{}, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if !ok {
		return model.TaskList{}, nil
	}
	l, err := model.DecodeTasks(data)
	if err != nil {
		return model.TaskList{}, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return l, nil
}

// SaveTasks encodes the full list and writes it under key.
func SaveTasks(s Store, key string, l model.TaskList) error {
	data, err := model.EncodeTasks(l)
	if err != nil {
		return err
	}
	if err := s.Set(key, data); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
