// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
)

// Storages bundles every repository over a single database handle.
type Storages struct {
	UserRepository      UserRepository
	BlacklistRepository BlacklistRepository
	StoreRepository     StoreRepository
	StoreItemRepository StoreItemRepository

	db *DB
}

// NewStorages connects to the configured driver, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already opened handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		BlacklistRepository: NewBlacklistRepository(db, log),
		StoreRepository:     NewStoreRepository(db, log),
		StoreItemRepository: NewStoreItemRepository(db, log),
		db:                  db,
	}
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
