package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"
)

//go:embed migration/*.sql
var migrationFS embed.FS

// Supported database/sql driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// openTimeout bounds the shared connect, ping and migrate attempt.
const openTimeout = 30 * time.Second

// Acquirer hands out the shared database handle.
type Acquirer interface {
	Acquire(ctx context.Context) (*sql.DB, error)
	Dialect() string
}

// Store is the process-wide, lazily opened database handle. The first Acquire opens,
// pings and migrates the database; concurrent first callers share that single attempt.
// A failed attempt is not remembered, so a later Acquire retries.
type Store struct {
	driver string
	dsn    string

	group singleflight.Group
	mu    sync.RWMutex
	db    *sql.DB
}

// NewStore returns a Store for the given driver ("postgres" or "sqlite") and DSN.
// No connection is made until Acquire.
func NewStore(driver, dsn string) *Store {
	return &Store{driver: driver, dsn: dsn}
}

// Dialect returns the driver name.
func (s *Store) Dialect() string { return s.driver }

// Acquire returns the shared *sql.DB, connecting on first use.
func (s *Store) Acquire(ctx context.Context) (*sql.DB, error) {
	s.mu.RLock()
	db := s.db
	s.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	ch := s.group.DoChan("open", func() (any, error) {
		s.mu.RLock()
		existing := s.db
		s.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}
		openCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), openTimeout)
		defer cancel()
		opened, err := s.open(openCtx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.db = opened
		s.mu.Unlock()
		return opened, nil
	})
	// The shared attempt outlives a caller that gives up.
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sql.DB), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Ping acquires the handle and checks it is reachable.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.Acquire(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Reset deletes every booking and event. Used by the seed command.
func (s *Store) Reset(ctx context.Context) error {
	db, err := s.Acquire(ctx)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()
	for _, table := range []string{"bookings", "events"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// Close closes the handle if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	if s.dsn == "" {
		return nil, fmt.Errorf("db connection string required")
	}
	switch s.driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported driver %q", s.driver)
	}

	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if s.driver == DriverSQLite {
		// SQLite allows a single writer; one connection avoids "database is locked".
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := migrate(ctx, db, s.driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("error whilst migrating: %w", err)
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB, driver string) error {
	// Ensure the 'migrations' table exists so we don't duplicate migrations.
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS migrations (name TEXT PRIMARY KEY)`); err != nil {
		return fmt.Errorf("cannot create migrations table: %w", err)
	}

	names, err := fs.Glob(migrationFS, "migration/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		if err := migrateFile(ctx, db, driver, name); err != nil {
			return fmt.Errorf("migration error: name=%q err=%w", name, err)
		}
	}
	return nil
}

func migrateFile(ctx context.Context, db *sql.DB, driver, name string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, rebind(driver, `SELECT COUNT(*) FROM migrations WHERE name = $1`), name).Scan(&n); err != nil {
		return err
	} else if n != 0 {
		return nil
	}

	buf, err := fs.ReadFile(migrationFS, name)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, string(buf)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, rebind(driver, `INSERT INTO migrations (name) VALUES ($1)`), name); err != nil {
		return err
	}
	return tx.Commit()
}

var placeholderRegex = regexp.MustCompile(`\$\d+`)

// rebind rewrites $N placeholders to ? for SQLite. Queries must reference every
// placeholder once, in ascending order.
func rebind(driver, query string) string {
	if driver != DriverSQLite {
		return query
	}
	return placeholderRegex.ReplaceAllString(query, "?")
}

// staticAcquirer wraps an already opened handle.
type staticAcquirer struct {
	db      *sql.DB
	dialect string
}

// NewStaticAcquirer returns an Acquirer that always yields db (tests, tools).
func NewStaticAcquirer(db *sql.DB, dialect string) Acquirer {
	return &staticAcquirer{db: db, dialect: dialect}
}

func (a *staticAcquirer) Acquire(context.Context) (*sql.DB, error) { return a.db, nil }

func (a *staticAcquirer) Dialect() string { return a.dialect }
