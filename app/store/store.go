// Package store keeps user preferences in a small SQL table, SQLite by default or PostgreSQL.
package store

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a preference has never been stored.
var ErrNotFound = errors.New("key not found")

// Engine is the SQL engine behind a Store.
type Engine string

// Supported engines, the value is also the database/sql driver name.
const (
	EngineSQLite   Engine = "sqlite"
	EnginePostgres Engine = "pgx"
)

// engineFor picks the engine from the connection string, anything not postgres is a sqlite file.
func engineFor(dbURL string) Engine {
	lower := strings.ToLower(dbURL)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return EnginePostgres
	}
	return EngineSQLite
}

// NormalizeKey trims spaces and leading/trailing slashes, and replaces inner spaces with underscores.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.Trim(key, "/")
	return strings.ReplaceAll(key, " ", "_")
}
