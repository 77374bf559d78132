// Package storage persists the bookmark collection.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nikbrunner/marks/internal/config"
	"github.com/nikbrunner/marks/internal/model"
)

// ErrUnknownBackend is returned by Open for a backend it cannot build.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Storage defines the interface for persisting bookmarks.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
}

// Open builds the backend named in cfg. The data path defaults to
// bookmarks.json or bookmarks.db in the config directory.
func Open(cfg *config.Config) (Storage, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		path, err := dataPath(cfg, "bookmarks.json")
		if err != nil {
			return nil, err
		}
		return NewJSONStorage(path), nil

	case config.BackendSQLite:
		path, err := dataPath(cfg, "bookmarks.db")
		if err != nil {
			return nil, err
		}
		return NewSQLiteStorage(path)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases s if it holds resources.
func Close(s Storage) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func dataPath(cfg *config.Config, file string) (string, error) {
	if cfg.DataPath != "" {
		return cfg.DataPath, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, file), nil
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the store from the JSON file.
// Returns an empty store if the file doesn't exist.
func (s *JSONStorage) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewStore(), nil
		}
		return nil, err
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	if store.Bookmarks == nil {
		store.Bookmarks = []model.Bookmark{}
	}

	return &store, nil
}

// Save writes the store to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(store *model.Store) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
