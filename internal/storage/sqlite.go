package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/calbers/startpage/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Storage using a SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrateSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrateSchema runs database migrations.
func (s *SQLiteStorage) migrateSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema. The position column carries the
// user-chosen display order; extra holds passthrough fields as JSON.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			url TEXT NOT NULL,
			favicon TEXT NOT NULL DEFAULT '',
			labels TEXT NOT NULL DEFAULT '[]',
			position INTEGER NOT NULL,
			extra TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_bookmarks_position ON bookmarks(position);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_url ON bookmarks(url);

		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY NOT NULL,
			value TEXT NOT NULL
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the state from the SQLite database in position order.
func (s *SQLiteStorage) Load() (*model.State, error) {
	state := model.NewState()

	rows, err := s.db.Query(`
		SELECT id, name, url, favicon, labels, extra
		FROM bookmarks
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, name, url, favicon, labelsJSON string
		var extraJSON sql.NullString

		if err := rows.Scan(&id, &name, &url, &favicon, &labelsJSON, &extraJSON); err != nil {
			return nil, err
		}

		// Rebuild the record as a JSON object so passthrough fields land
		// back in the same place they occupy in the JSON backend.
		record := map[string]json.RawMessage{}
		if extraJSON.Valid && extraJSON.String != "" {
			if err := json.Unmarshal([]byte(extraJSON.String), &record); err != nil {
				return nil, err
			}
		}
		put := func(key string, v any) {
			data, _ := json.Marshal(v)
			record[key] = data
		}
		put("id", id)
		put("name", name)
		put("url", url)
		put("favicon", favicon)
		record["labels"] = json.RawMessage(labelsJSON)

		data, err := json.Marshal(record)
		if err != nil {
			return nil, err
		}

		var b model.Bookmark
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		migrate(&b)

		state.Bookmarks = append(state.Bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var viewMode string
	err = s.db.QueryRow("SELECT value FROM meta WHERE key = 'view_mode'").Scan(&viewMode)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	state.ViewMode = viewMode

	return state, nil
}

// Save writes the full state to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(state *model.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM bookmarks"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bookmarks (id, name, url, favicon, labels, position, extra)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for position, b := range state.Bookmarks {
		labels := b.Labels
		if labels == nil {
			labels = []string{}
		}
		labelsJSON, err := json.Marshal(labels)
		if err != nil {
			return err
		}

		extraJSON, err := extraFields(b)
		if err != nil {
			return err
		}

		if _, err := stmt.Exec(
			b.ID, b.Name, b.URL, b.Favicon,
			string(labelsJSON), position, extraJSON,
		); err != nil {
			return err
		}
	}

	if state.ViewMode == "" {
		if _, err := tx.Exec("DELETE FROM meta WHERE key = 'view_mode'"); err != nil {
			return err
		}
	} else {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO meta (key, value) VALUES ('view_mode', ?)",
			state.ViewMode,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// extraFields extracts the passthrough fields of a bookmark as a JSON
// object, or nil when the record carries none.
func extraFields(b model.Bookmark) (*string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	for _, key := range []string{"id", "name", "url", "favicon", "labels"} {
		delete(record, key)
	}
	if len(record) == 0 {
		return nil, nil
	}

	extra, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	extraStr := string(extra)
	return &extraStr, nil
}

// DefaultSQLitePath returns the default SQLite database path:
// ~/.config/startpage/bookmarks.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "startpage", "bookmarks.db"), nil
}
