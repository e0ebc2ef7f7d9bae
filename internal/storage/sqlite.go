package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite keeps files as rows of a single table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// one writer; keeps ":memory:" databases on a single connection
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS files (
		name TEXT PRIMARY KEY,
		content BLOB,
		mod_time INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create files table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM files ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (s *SQLite) Load(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT content FROM files WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQLite) Store(name string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.Exec(`INSERT INTO files (name, content, mod_time) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content, mod_time = excluded.mod_time`,
		name, data, time.Now().Unix())
	return err
}

func (s *SQLite) Close() error { return s.db.Close() }
