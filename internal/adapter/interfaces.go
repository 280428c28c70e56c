// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport used to talk to the
// store-keeper server.
//
// The primary abstraction is [ServerAdapter], which hides the REST protocol
// from the command-line client. Non-2xx responses are mapped to the sentinel
// errors in errors.go so that callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-store-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the store-keeper server.
// Implementations attach the stored bearer token to authenticated requests
// and map transport failures to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates the user and stores the issued token.
	Login(ctx context.Context, user models.User) (string, error)

	// Logout revokes the stored token on the server and forgets it locally.
	Logout(ctx context.Context) error

	// ResetPassword changes the password of the authenticated user.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// ListStores fetches one page of the caller's stores whose names contain
	// query. page is 1-based; 0 lets the server pick the first page.
	ListStores(ctx context.Context, query string, page int) (models.StoreListResponse, error)

	// CreateStore creates a store with the given name.
	CreateStore(ctx context.Context, name string) (models.Store, error)

	// DeleteStore removes a store together with its items.
	DeleteStore(ctx context.Context, storeID int64) error

	// ListItems fetches one page of the items of storeID.
	ListItems(ctx context.Context, storeID int64, query string, page int) (models.StoreItemListResponse, error)

	// CreateItem adds an item to storeID.
	CreateItem(ctx context.Context, storeID int64, req models.StoreItemRequest) (models.StoreItem, error)

	// DeleteItem removes an item from storeID.
	DeleteItem(ctx context.Context, storeID, itemID int64) error
}
