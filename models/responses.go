// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response statuses used in every JSON envelope.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Response is the generic {status, message} envelope.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	AuthToken string `json:"auth_token"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// StoreListResponse is one page of the caller's stores.
type StoreListResponse struct {
	Status   string  `json:"status"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
	Count    int     `json:"count"`
	Stores   []Store `json:"stores"`
}

// StoreItemListResponse is one page of a store's items.
type StoreItemListResponse struct {
	Status   string      `json:"status"`
	Previous *string     `json:"previous"`
	Next     *string     `json:"next"`
	Count    int         `json:"count"`
	Items    []StoreItem `json:"items"`
}

// StoreResponse wraps a single store.
type StoreResponse struct {
	Status string `json:"status"`
	Store  Store  `json:"store"`
}

// CreatedStoreResponse is the flat body returned after a store is created.
type CreatedStoreResponse struct {
	Status string `json:"status"`
	Store
}

// StoreItemResponse wraps a single item.
type StoreItemResponse struct {
	Status string    `json:"status"`
	Item   StoreItem `json:"item"`
}
