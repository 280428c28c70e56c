// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-store-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// BlacklistRepository persists revoked tokens.
type BlacklistRepository interface {
	// AddToken inserts entry. A second insert of the same token string
	// fails with ErrTokenAlreadyBlacklisted.
	AddToken(ctx context.Context, entry models.BlacklistEntry) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	// DeleteExpired removes entries whose token expired before the given
	// time and reports how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// StoreRepository persists stores. Every lookup and mutation is scoped by
// owner in the same statement.
type StoreRepository interface {
	CreateStore(ctx context.Context, store models.Store) (models.Store, error)
	FindUserStore(ctx context.Context, userID, storeID int64) (models.Store, error)
	UpdateStore(ctx context.Context, store models.Store) (models.Store, error)
	DeleteStore(ctx context.Context, userID, storeID int64) error
	CountUserStores(ctx context.Context, userID int64, filter string) (int, error)
	ListUserStores(ctx context.Context, userID int64, filter string, offset, limit int) ([]models.Store, error)
}

// StoreItemRepository persists store items. Every lookup and mutation is
// scoped by the parent store in the same statement.
type StoreItemRepository interface {
	CreateItem(ctx context.Context, item models.StoreItem) (models.StoreItem, error)
	FindStoreItem(ctx context.Context, storeID, itemID int64) (models.StoreItem, error)
	UpdateItem(ctx context.Context, item models.StoreItem) (models.StoreItem, error)
	DeleteItem(ctx context.Context, storeID, itemID int64) error
	CountStoreItems(ctx context.Context, storeID int64, filter string) (int, error)
	ListStoreItems(ctx context.Context, storeID int64, filter string, offset, limit int) ([]models.StoreItem, error)
}

// ErrorClassificator maps driver errors to driver-independent classes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
