// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/models"
)

var apiStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newSQLiteAPI serves the real services over a migrated SQLite file.
// go-sqlite3 needs cgo, so the test is skipped when the driver cannot open
// a file.
func newSQLiteAPI(t *testing.T) (http.Handler, *clock.FakeClock) {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "api.db"),
	}}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite is not available: %v", err)
	}
	t.Cleanup(func() { storages.Close() })

	cfg := &config.StructuredConfig{App: config.App{
		TokenSignKey:  "sqlite-api-secret",
		TokenIssuer:   "store-keeper",
		TokenDuration: time.Hour,
		BcryptCost:    4,
		PageSize:      5,
		Version:       "1.0.0",
	}}

	clk := clock.Fake(apiStart)
	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), clk, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, config.Server{}, logger.Nop()).Init(), clk
}

func registerUser(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	rec := doRequest(router, http.MethodPost, "/v1/auth/register",
		fmt.Sprintf(`{"email":%q,"password":"secret-pass"}`, email), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeResponse[models.AuthResponse](t, rec).AuthToken
}

func createStoreVia(t *testing.T, router http.Handler, token, name string) models.Store {
	t.Helper()
	rec := doRequest(router, http.MethodPost, "/v1/storelists", fmt.Sprintf(`{"name":%q}`, name), token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeResponse[models.CreatedStoreResponse](t, rec).Store
}

func createItemVia(t *testing.T, router http.Handler, token string, storeID int64, name string) models.StoreItem {
	t.Helper()
	rec := doRequest(router, http.MethodPost, fmt.Sprintf("/v1/storelists/%d/items", storeID),
		fmt.Sprintf(`{"name":%q}`, name), token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeResponse[models.StoreItemResponse](t, rec).Item
}

func TestSQLiteAPI_LogoutRevokesToken(t *testing.T) {
	router, _ := newSQLiteAPI(t)
	token := registerUser(t, router, "john@example.com")

	rec := doRequest(router, http.MethodGet, "/v1/storelists", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(router, http.MethodPost, "/v1/auth/logout", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(router, http.MethodGet, "/v1/storelists", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse[models.Response](t, rec)
	assert.Equal(t, models.StatusFailed, resp.Status)
	assert.Equal(t, service.ErrTokenIsRevoked.Error(), resp.Message)
}

func TestSQLiteAPI_StorePagination(t *testing.T) {
	router, _ := newSQLiteAPI(t)
	token := registerUser(t, router, "john@example.com")

	for _, name := range []string{"Travel", "Tral", "Trvel", "Tavel", "Travl", "Trave"} {
		createStoreVia(t, router, token, name)
	}

	rec := doRequest(router, http.MethodGet, "/v1/storelists?q=T", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decodeResponse[models.StoreListResponse](t, rec)
	assert.Equal(t, 6, first.Count)
	assert.Len(t, first.Stores, 5)
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Equal(t, "http://example.com/v1/storelists?page=2&q=T", *first.Next)

	rec = doRequest(router, http.MethodGet, "/v1/storelists?q=T&page=2", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	second := decodeResponse[models.StoreListResponse](t, rec)
	assert.Equal(t, 6, second.Count)
	assert.Len(t, second.Stores, 1)
	require.NotNil(t, second.Previous)
	assert.Equal(t, "http://example.com/v1/storelists?page=1&q=T", *second.Previous)
	assert.Nil(t, second.Next)

	rec = doRequest(router, http.MethodGet, "/v1/storelists?q=T&page=9", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	past := decodeResponse[models.StoreListResponse](t, rec)
	assert.Equal(t, 6, past.Count)
	assert.Empty(t, past.Stores)
	assert.NotNil(t, past.Previous)
	assert.Nil(t, past.Next)

	rec = doRequest(router, http.MethodGet, "/v1/storelists?q=tr", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 5, decodeResponse[models.StoreListResponse](t, rec).Count)

	rec = doRequest(router, http.MethodGet, "/v1/storelists?q=%25", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	literal := decodeResponse[models.StoreListResponse](t, rec)
	assert.Equal(t, 0, literal.Count)
	assert.Empty(t, literal.Stores)
}

func TestSQLiteAPI_ItemsNewestFirst(t *testing.T) {
	router, clk := newSQLiteAPI(t)
	token := registerUser(t, router, "john@example.com")
	pantry := createStoreVia(t, router, token, "pantry")

	var created []models.StoreItem
	for _, name := range []string{"salt", "sugar", "flour"} {
		created = append(created, createItemVia(t, router, token, pantry.ID, name))
		clk.Advance(time.Second)
	}

	rec := doRequest(router, http.MethodGet, fmt.Sprintf("/v1/storelists/%d/items", pantry.ID), "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	list := decodeResponse[models.StoreItemListResponse](t, rec)

	require.Len(t, list.Items, 3)
	assert.Equal(t, 3, list.Count)
	assert.Equal(t, created[2].ID, list.Items[0].ID)
	assert.Equal(t, created[1].ID, list.Items[1].ID)
	assert.Equal(t, created[0].ID, list.Items[2].ID)
}

func TestSQLiteAPI_ForeignItemIsNotFound(t *testing.T) {
	router, _ := newSQLiteAPI(t)
	owner := registerUser(t, router, "owner@example.com")
	stranger := registerUser(t, router, "stranger@example.com")

	pantry := createStoreVia(t, router, owner, "pantry")
	salt := createItemVia(t, router, owner, pantry.ID, "salt")

	path := fmt.Sprintf("/v1/storelists/%d/items/%d", pantry.ID, salt.ID)

	rec := doRequest(router, http.MethodGet, path, "", stranger)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, service.ErrStoreNotFound.Error(), decodeResponse[models.Response](t, rec).Message)

	rec = doRequest(router, http.MethodDelete, path, "", stranger)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodGet, path, "", owner)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "salt", decodeResponse[models.StoreItemResponse](t, rec).Item.Name)
}

func TestSQLiteAPI_TokenExpiresAtExactInstant(t *testing.T) {
	router, clk := newSQLiteAPI(t)
	token := registerUser(t, router, "john@example.com")

	clk.Set(apiStart.Add(time.Hour - time.Second))
	rec := doRequest(router, http.MethodGet, "/v1/storelists", "", token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	clk.Set(apiStart.Add(time.Hour))
	rec = doRequest(router, http.MethodGet, "/v1/storelists", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrTokenIsExpired.Error(), decodeResponse[models.Response](t, rec).Message)
}
