package db

import (
	"context"
	"database/sql"
	"fmt"
)

var postgresUp = []string{
	`CREATE TABLE IF NOT EXISTS contents (
    id              BIGSERIAL PRIMARY KEY,
    type            VARCHAR(16)  NOT NULL,
    title           TEXT         NOT NULL,
    slug            VARCHAR(200) NOT NULL,
    excerpt         TEXT         NOT NULL DEFAULT '',
    status          VARCHAR(16)  NOT NULL DEFAULT 'publish',
    author_name     TEXT         NOT NULL DEFAULT '',
    published_at    TIMESTAMPTZ  NOT NULL DEFAULT now(),
    modified_at     TIMESTAMPTZ  NOT NULL DEFAULT now(),
    company         TEXT         NOT NULL DEFAULT '',
    location        TEXT         NOT NULL DEFAULT '',
    employment_type TEXT         NOT NULL DEFAULT '',
    salary_min      INTEGER      NOT NULL DEFAULT 0,
    salary_max      INTEGER      NOT NULL DEFAULT 0,
    featured        BOOLEAN      NOT NULL DEFAULT FALSE,
    remote          BOOLEAN      NOT NULL DEFAULT FALSE,
    UNIQUE (type, slug)
)`,
	`CREATE TABLE IF NOT EXISTS content_terms (
    content_id BIGINT      NOT NULL REFERENCES contents(id) ON DELETE CASCADE,
    taxonomy   VARCHAR(32) NOT NULL,
    slug       VARCHAR(64) NOT NULL,
    name       TEXT        NOT NULL DEFAULT '',
    PRIMARY KEY (content_id, taxonomy, slug)
)`,
	`CREATE TABLE IF NOT EXISTS settings (
    key        VARCHAR(64) PRIMARY KEY,
    value      TEXT        NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_contents_listing ON contents (type, status, published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_content_terms_lookup ON content_terms (taxonomy, slug)`,
}

var sqliteUp = []string{
	`CREATE TABLE IF NOT EXISTS contents (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    type            TEXT     NOT NULL,
    title           TEXT     NOT NULL,
    slug            TEXT     NOT NULL,
    excerpt         TEXT     NOT NULL DEFAULT '',
    status          TEXT     NOT NULL DEFAULT 'publish',
    author_name     TEXT     NOT NULL DEFAULT '',
    published_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    modified_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    company         TEXT     NOT NULL DEFAULT '',
    location        TEXT     NOT NULL DEFAULT '',
    employment_type TEXT     NOT NULL DEFAULT '',
    salary_min      INTEGER  NOT NULL DEFAULT 0,
    salary_max      INTEGER  NOT NULL DEFAULT 0,
    featured        BOOLEAN  NOT NULL DEFAULT 0,
    remote          BOOLEAN  NOT NULL DEFAULT 0,
    UNIQUE (type, slug)
)`,
	`CREATE TABLE IF NOT EXISTS content_terms (
    content_id INTEGER NOT NULL REFERENCES contents(id) ON DELETE CASCADE,
    taxonomy   TEXT    NOT NULL,
    slug       TEXT    NOT NULL,
    name       TEXT    NOT NULL DEFAULT '',
    PRIMARY KEY (content_id, taxonomy, slug)
)`,
	`CREATE TABLE IF NOT EXISTS settings (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_contents_listing ON contents (type, status, published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_content_terms_lookup ON content_terms (taxonomy, slug)`,
}

var down = []string{
	`DROP TABLE IF EXISTS content_terms`,
	`DROP TABLE IF EXISTS contents`,
	`DROP TABLE IF EXISTS settings`,
}

// MigrateUp creates the tables and indexes for driver. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case DriverPostgres:
		stmts = postgresUp
	case DriverSQLite:
		stmts = sqliteUp
	default:
		return fmt.Errorf("migrate up: %w: %q", ErrUnsupportedDriver, driver)
	}
	return execAll(ctx, db, "migrate up", stmts)
}

// MigrateDown drops everything MigrateUp created. Both dialects share the
// same statements.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, "migrate down", down)
}

func execAll(ctx context.Context, db *sql.DB, op string, stmts []string) error {
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: statement %d: %w", op, i+1, err)
		}
	}
	return nil
}
