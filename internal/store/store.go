package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ProgressRepo returns a ProgressRepo backed by this store.
func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{db: s.db}
}

// NoteRepo returns a NoteRepo backed by this store.
func (s *Store) NoteRepo() NoteRepo {
	return &noteRepo{db: s.db}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// PrefsRepo returns a PrefsRepo backed by this store.
func (s *Store) PrefsRepo() PrefsRepo {
	return &prefsRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. Tables are additive only; there is no
// versioned migration history for a single-user local database.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress_records (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			topic        TEXT NOT NULL,
			date         TEXT NOT NULL,
			score        REAL NOT NULL,
			difficulty   TEXT NOT NULL,
			time_spent   TEXT NOT NULL DEFAULT '',
			used_notes   INTEGER NOT NULL DEFAULT 0,
			subject      TEXT NOT NULL DEFAULT 'other',
			notes        TEXT NOT NULL DEFAULT '',
			created_at   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_progress_topic ON progress_records(topic)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id           TEXT PRIMARY KEY,
			topic        TEXT NOT NULL,
			body         TEXT NOT NULL,
			difficulty   TEXT NOT NULL DEFAULT 'medium',
			created_at   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_topic ON notes(topic)`,
		`CREATE TABLE IF NOT EXISTS request_events (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			operation    TEXT NOT NULL,
			objective    TEXT NOT NULL DEFAULT '',
			difficulty   TEXT NOT NULL DEFAULT '',
			latency_ms   INTEGER NOT NULL DEFAULT 0,
			success      INTEGER NOT NULL,
			error        TEXT NOT NULL DEFAULT '',
			created_at   TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SCIQUIZ_DB environment variable
// 2. $XDG_DATA_HOME/sciquiz/sciquiz.db
// 3. ~/.local/share/sciquiz/sciquiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SCIQUIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "sciquiz", "sciquiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
