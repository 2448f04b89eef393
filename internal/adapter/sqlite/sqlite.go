// Package sqlite implements the domain repositories on a single SQLite
// database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps a *sql.DB shared by the repositories. The driver does not support
// concurrent writes, so all writers serialize on writeMu.
type DB struct {
	sql     *sql.DB
	writeMu sync.Mutex
}

// Open opens (creating if necessary) the database file and runs migrations.
func Open(path string) (*DB, error) {
	s, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := s.Ping(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	s.SetConnMaxLifetime(5 * time.Minute)

	if _, err := s.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	d := &DB{sql: s}
	if err := d.migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT    PRIMARY KEY,
			username      TEXT    UNIQUE NOT NULL,
			name          TEXT    NOT NULL DEFAULT '',
			password_hash TEXT    NOT NULL,
			post_ids      TEXT    NOT NULL DEFAULT '[]',
			created_at    INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id         TEXT    PRIMARY KEY,
			title      TEXT    NOT NULL,
			author     TEXT    NOT NULL DEFAULT '',
			url        TEXT    NOT NULL,
			likes      INTEGER NOT NULL DEFAULT 0,
			user_id    TEXT    NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_user_id ON posts(user_id)`,
	}

	for _, stmt := range stmts {
		if _, err := d.sql.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
