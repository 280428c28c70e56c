// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-store-keeper/internal/pagination"
	"github.com/MKhiriev/go-store-keeper/models"
)

// TokenService issues, verifies and revokes bearer tokens.
type TokenService interface {
	IssueToken(ctx context.Context, userID int64) (models.Token, error)
	// VerifyToken returns the subject of tokenString. Structure and signature
	// are checked first, then expiry, then the blacklist.
	VerifyToken(ctx context.Context, tokenString string) (int64, error)
	// RevokeToken blacklists the exact token string. Revoking a token twice
	// is not an error.
	RevokeToken(ctx context.Context, tokenString string) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	Logout(ctx context.Context, tokenString string) error
	ResetPassword(ctx context.Context, userID int64, request models.ResetPasswordRequest) error
}

// AccessService resolves the caller of a request and the resources the
// caller may touch. Resources owned by someone else are reported exactly
// like missing ones.
type AccessService interface {
	Authenticate(ctx context.Context, authorizationHeader string) (models.User, error)
	AuthorizeStore(ctx context.Context, userID, storeID int64) (models.Store, error)
	AuthorizeStoreItem(ctx context.Context, userID, storeID, itemID int64) (models.StoreItem, error)
}

// StoreService manages stores that have already been authorized.
type StoreService interface {
	CreateStore(ctx context.Context, userID int64, request models.StoreRequest) (models.Store, error)
	RenameStore(ctx context.Context, store models.Store, request models.StoreRequest) (models.Store, error)
	DeleteStore(ctx context.Context, store models.Store) error
	ListStores(ctx context.Context, userID int64, request pagination.Request) (pagination.Page[models.Store], error)
}

// StoreItemService manages the items of an already authorized store.
type StoreItemService interface {
	CreateItem(ctx context.Context, store models.Store, request models.StoreItemRequest) (models.StoreItem, error)
	UpdateItem(ctx context.Context, item models.StoreItem, request models.StoreItemRequest) (models.StoreItem, error)
	DeleteItem(ctx context.Context, item models.StoreItem) error
	ListItems(ctx context.Context, store models.Store, request pagination.Request) (pagination.Page[models.StoreItem], error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// StoreServiceWrapper decorates a StoreService.
type StoreServiceWrapper interface {
	Wrap(StoreService) StoreService
}

// StoreItemServiceWrapper decorates a StoreItemService.
type StoreItemServiceWrapper interface {
	Wrap(StoreItemService) StoreItemService
}
