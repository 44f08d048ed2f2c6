// Package store persists the generation history. The authoritative calendar
// document itself is never persisted; history rows keep the raw exchange
// text for debugging and auditing.
package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store handles all database operations.
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite backend.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scope TEXT NOT NULL,
		month TEXT,
		year INTEGER,
		prompt TEXT NOT NULL,
		response TEXT,
		success BOOLEAN NOT NULL,
		error TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_generations_created_at ON generations(created_at);
	CREATE INDEX IF NOT EXISTS idx_generations_scope ON generations(scope);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveGeneration records one generation or regeneration attempt.
func (s *Store) SaveGeneration(g *Generation) error {
	res, err := s.db.Exec(`
		INSERT INTO generations (scope, month, year, prompt, response, success, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, g.Scope, g.Month, g.Year, g.Prompt, g.Response, g.Success, g.Error)
	if err != nil {
		return err
	}

	if id, err := res.LastInsertId(); err == nil {
		g.ID = id
	}
	return nil
}

// Recent returns the most recent generation attempts, newest first.
func (s *Store) Recent(limit int) ([]Generation, error) {
	rows, err := s.db.Query(`
		SELECT id, scope, month, year, prompt, response, success, error, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.Scope, &g.Month, &g.Year, &g.Prompt, &g.Response, &g.Success, &g.Error, &g.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, g)
	}
	return results, rows.Err()
}

// LastSuccess returns the newest successful attempt for a scope, if any.
func (s *Store) LastSuccess(scope string) (*Generation, error) {
	var g Generation
	err := s.db.QueryRow(`
		SELECT id, scope, month, year, prompt, response, success, error, created_at
		FROM generations
		WHERE scope = ? AND success = 1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, scope).Scan(&g.ID, &g.Scope, &g.Month, &g.Year, &g.Prompt, &g.Response, &g.Success, &g.Error, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}
