package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Memory is the path of a private in-memory database.
const Memory = ":memory:"

// DB wraps a sql.DB holding the players scratch table.
type DB struct {
	conn *sql.DB
}

// Open opens the SQLite database at the given path and applies the schema.
// Use Memory for a throwaway database that lives as long as the DB.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	if path == Memory {
		dsn = Memory
	}
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Every pooled connection to :memory: would see its own empty database.
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
