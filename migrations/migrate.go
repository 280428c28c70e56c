// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema for every supported database driver
// and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported drivers. They match config.DriverPostgres and config.DriverSQLite.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var errNilDB = errors.New("db is nil")

// Migrate applies all pending migrations for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case DriverPostgres:
		return "pgx", DriverPostgres, nil
	case DriverSQLite:
		return "sqlite3", DriverSQLite, nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", driver)
	}
}
