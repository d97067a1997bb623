package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// NewSQLite opens (creating if needed) a single-table key-value database at
// path and returns a KV backed by it.
func NewSQLite(path string) (KV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS months (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ensure months table: %w", err)
	}
	return &sqliteKV{db: db}, nil
}

type sqliteKV struct {
	db *sql.DB
}

func (k *sqliteKV) Get(key string) (string, bool) {
	var value string
	err := k.db.QueryRow(`SELECT value FROM months WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (k *sqliteKV) Set(key, value string) error {
	_, err := k.db.Exec(
		`INSERT INTO months (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}
