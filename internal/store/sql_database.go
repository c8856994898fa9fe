package store

import (
	"context"
	"database/sql"
	"sync"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/migrations"
)

// DB is a relational connection together with everything that differs
// between SQL dialects.
type DB struct {
	*sql.DB
	dialect    string
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	logger     *logger.Logger

	// writeLock serialises writes for drivers without concurrent write
	// support (sqlite). Nil when the database handles it itself.
	writeLock *sync.Mutex
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the migration dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) lockWrites() func() {
	if db.writeLock == nil {
		return func() {}
	}
	db.writeLock.Lock()
	return db.writeLock.Unlock
}
