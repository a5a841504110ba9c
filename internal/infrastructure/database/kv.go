package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eslsoft/blinkvocab/internal/infrastructure/config"

	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

// Store is a namespaced key-value blob store over database/sql. It backs the
// profile snapshot and the durable word-detail cache, mirroring the
// per-device storage the app replaces.
type Store struct {
	db     *sql.DB
	driver string
}

// Entry is one stored blob, used by backup export/import.
type Entry struct {
	Namespace string
	Key       string
	Value     []byte
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS kv_entries (
	ns TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (ns, key)
)`

// NewStore opens the configured database, verifies connectivity and ensures
// the schema exists.
func NewStore(cfg *config.Config) (*Store, func(), error) {
	driver, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}

	db, err := sql.Open(driver, cfg.DatabaseDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping %s db: %w", driver, err)
	}

	store := &Store{db: db, driver: driver}
	if err := store.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return store, func() { _ = db.Close() }, nil
}

// NewStoreWithDB wraps an already-open database, ensuring the schema exists.
// Used by tests and the backup service.
func NewStoreWithDB(ctx context.Context, db *sql.DB, driver string) (*Store, error) {
	store := &Store{db: db, driver: driver}
	if err := store.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("create kv schema: %w", err)
	}
	return nil
}

// Get returns the blob for (ns, key), or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, ns, key string) ([]byte, error) {
	query := s.rebind(`SELECT value FROM kv_entries WHERE ns = ? AND key = ?`)
	var value []byte
	err := s.db.QueryRowContext(ctx, query, ns, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", ns, key, err)
	}
	return value, nil
}

// Put upserts the blob for (ns, key). Last write wins.
func (s *Store) Put(ctx context.Context, ns, key string, value []byte) error {
	query := s.rebind(`
		INSERT INTO kv_entries (ns, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (ns, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := s.db.ExecContext(ctx, query, ns, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("put %s/%s: %w", ns, key, err)
	}
	return nil
}

// Entries returns every stored blob, ordered by namespace then key.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ns, key, value FROM kv_entries ORDER BY ns, key`)
	if err != nil {
		return nil, fmt.Errorf("list kv entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Namespace, &e.Key, &e.Value); err != nil {
			return nil, fmt.Errorf("scan kv entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
