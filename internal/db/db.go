// Package db owns the Postgres connection and schema migration.
package db

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"propdir/internal/config"
)

// DB bundles the gorm handle with the underlying pool so callers can
// reach either without re-deriving one from the other.
type DB struct {
	Gorm *gorm.DB
	SQL  *sql.DB
}

// Open connects to Postgres and applies the pool limits from config.
// Query logging is left to the application logger; gorm's own is muted.
func Open(cfg config.DBConfig) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	pool, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	pool.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return &DB{Gorm: gdb, SQL: pool}, nil
}

func (d *DB) Close() error {
	if d == nil || d.SQL == nil {
		return nil
	}
	return d.SQL.Close()
}

// Ping verifies the database is reachable. The readiness endpoint calls
// this per request, so it honors the caller's context.
func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.SQL == nil {
		return sql.ErrConnDone
	}
	return d.SQL.PingContext(ctx)
}

// SetTimezone pins the session timezone so timestamptz values render
// consistently regardless of the server default.
func (d *DB) SetTimezone(tz string) error {
	if tz == "" {
		return nil
	}
	_, err := d.SQL.Exec("SET TIME ZONE '" + tz + "'")
	return err
}
