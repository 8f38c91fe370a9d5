package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/calbers/startpage/internal/model"
)

// Storage defines the interface for persisting start page state.
type Storage interface {
	Load() (*model.State, error)
	Save(state *model.State) error
}

// persistedState is the on-disk layout. ViewMode serializes as null
// when no label filter is selected.
type persistedState struct {
	Bookmarks []model.Bookmark `json:"bookmarks"`
	ViewMode  *string          `json:"viewMode"`
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

// Load reads the state from the JSON file.
// Returns an empty state if the file doesn't exist. Records written
// under an older schema are migrated in memory; the file itself is not
// rewritten until the next Save.
func (s *JSONStorage) Load() (*model.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewState(), nil
		}
		return nil, err
	}

	var persisted persistedState
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, err
	}

	state := model.NewState()
	if persisted.Bookmarks != nil {
		state.Bookmarks = persisted.Bookmarks
	}
	if persisted.ViewMode != nil {
		state.ViewMode = *persisted.ViewMode
	}

	for i := range state.Bookmarks {
		migrate(&state.Bookmarks[i])
	}

	return state, nil
}

// Save writes the full state to the JSON file verbatim.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(state *model.State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(toPersisted(state), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// migrate applies forward migrations to a single record:
// missing labels become an empty set, and a record without an ID (the
// pre-ID layout used positional identity) receives a fresh one.
func migrate(b *model.Bookmark) {
	if b.Labels == nil {
		b.Labels = []string{}
	}
	if b.ID == "" {
		b.ID = model.NewID()
	}
}

func toPersisted(state *model.State) persistedState {
	persisted := persistedState{Bookmarks: state.Bookmarks}
	if persisted.Bookmarks == nil {
		persisted.Bookmarks = []model.Bookmark{}
	}
	if state.ViewMode != "" {
		mode := state.ViewMode
		persisted.ViewMode = &mode
	}
	return persisted
}

// DefaultStatePath returns the default storage path:
// ~/.config/startpage/bookmarks.json
func DefaultStatePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "startpage", "bookmarks.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
