// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: every statement goose issues fails

	err = Migrate(db, DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, DriverPostgres)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNilDB)
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestEmbeddedMigrations_SameVersionsPerDriver(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, pg[i][len("postgres/"):], lite[i][len("sqlite/"):])
	}
}
