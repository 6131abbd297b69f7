package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// Store persists preferences as key/value rows of the prefs table.
type Store struct {
	db     *sqlx.DB
	engine Engine
	mu     sync.RWMutex // sqlite only, postgres handles concurrent writers itself
}

// New opens the database behind dbURL and makes sure the prefs table exists.
// postgres:// and postgresql:// URLs go to PostgreSQL, everything else is a SQLite file path.
func New(dbURL string) (*Store, error) {
	engine := engineFor(dbURL)
	db, err := sqlx.Connect(string(engine), dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", engine, err)
	}

	s := &Store{db: db, engine: engine}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Printf("[DEBUG] preferences store ready, engine %s", engine)
	return s, nil
}

func (s *Store) init() error {
	stmts := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		`CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}
	if s.engine == EnginePostgres {
		stmts = []string{`CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`}
		s.db.SetMaxOpenConns(5)
		s.db.SetConnMaxLifetime(5 * time.Minute)
	} else {
		s.db.SetMaxOpenConns(1) // single sqlite writer
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil { //nolint:noctx // runs once on open
			return fmt.Errorf("failed to init prefs table: %w", err)
		}
	}
	return nil
}

func (s *Store) lock() func() {
	if s.engine == EnginePostgres {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) rlock() func() {
	if s.engine == EnginePostgres {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// Get returns the stored value of key or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	defer s.rlock()()

	var value string
	err := s.db.GetContext(ctx, &value, s.db.Rebind("SELECT value FROM prefs WHERE key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set creates or replaces the value of key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	defer s.lock()()

	query := s.db.Rebind(`INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, key string) error {
	defer s.lock()()

	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM prefs WHERE key = ?"), key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close prefs store: %w", err)
	}
	return nil
}
