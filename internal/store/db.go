package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Japjeet07/ChefMaker-sub000/internal/bus"
	"github.com/Japjeet07/ChefMaker-sub000/internal/store/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DB is the SQLite-backed Store. Change notifications are published on a bus,
// so subscribers only see writes made through this process.
type DB struct {
	*sql.DB
	bus    *bus.Bus
	logger *zap.Logger
	now    func() time.Time
}

var _ Store = (*DB)(nil)

// Option configures a DB.
type Option func(*DB)

// WithBus sets the bus used for change notifications. Without it Subscribe still
// works but only observes writes through the same DB value.
func WithBus(b *bus.Bus) Option {
	return func(db *DB) { db.bus = b }
}

// WithLogger sets the logger used for skipped or malformed rows.
func WithLogger(l *zap.Logger) Option {
	return func(db *DB) { db.logger = l }
}

// WithClock overrides the clock used for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(db *DB) { db.now = now }
}

// Open creates a new SQLite connection with WAL mode and recommended pragmas.
// Transactions take the write lock up front so concurrent senders queue on
// busy_timeout instead of failing a lock upgrade.
func Open(path string, opts ...Option) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	db := &DB{DB: sqlDB, now: time.Now}
	for _, opt := range opts {
		opt(db)
	}
	if db.bus == nil {
		db.bus = bus.New()
	}
	if db.logger == nil {
		db.logger = zap.NewNop()
	}
	return db, nil
}

// MigrateResult describes what happened during migration.
type MigrateResult struct {
	Version uint
	Dirty   bool
	Changed bool
}

// Migrate runs all pending migrations on the database.
func (db *DB) Migrate() (*MigrateResult, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}

	changed := true
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return nil, fmt.Errorf("migration up: %w", err)
		}
		changed = false
	}

	version, dirty, _ := m.Version()
	return &MigrateResult{Version: version, Dirty: dirty, Changed: changed}, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.DB.Close()
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
