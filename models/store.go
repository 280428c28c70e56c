// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Store is a named list owned by exactly one user.
type Store struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"-"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// StoreItem is an entry of a Store. It is reachable only through its parent
// store, which in turn is reachable only by its owner.
type StoreItem struct {
	ID          int64     `json:"id"`
	StoreID     int64     `json:"storeId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	ModifiedAt  time.Time `json:"modifiedAt"`
}

// StoreRequest is the payload used to create or rename a store.
type StoreRequest struct {
	Name string `json:"name"`
}

// StoreItemRequest is the payload used to create or update a store item.
// A nil Description leaves the stored description untouched on update.
type StoreItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
