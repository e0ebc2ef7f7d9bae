package storage

import (
	"fmt"
)

// Backend kinds accepted by Open.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
	KindDir    = "dir"
)

// Open returns the backend named by kind. path is the database file for
// sqlite and the root directory for dir.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case "", KindMemory:
		return NewMemory(), nil
	case KindSQLite:
		if path == "" {
			return nil, fmt.Errorf("sqlite backend needs a path")
		}
		return OpenSQLite(path)
	case KindDir:
		if path == "" {
			return nil, fmt.Errorf("dir backend needs a path")
		}
		return OpenDir(path)
	}
	return nil, fmt.Errorf("unknown storage backend %q", kind)
}
