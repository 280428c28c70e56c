// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/mock"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/models"
)

const validToken = "good-token"

type serviceMocks struct {
	auth    *mock.MockAuthService
	access  *mock.MockAccessService
	stores  *mock.MockStoreService
	items   *mock.MockStoreItemService
	appInfo *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	return newTestRouterWithConfig(t, config.Server{})
}

func newTestRouterWithConfig(t *testing.T, cfg config.Server) (http.Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		access:  mock.NewMockAccessService(ctrl),
		stores:  mock.NewMockStoreService(ctrl),
		items:   mock.NewMockStoreItemService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:      m.auth,
		AccessService:    m.access,
		StoreService:     m.stores,
		StoreItemService: m.items,
		AppInfoService:   m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

// signedIn makes the access mock accept validToken for user 1.
func (m serviceMocks) signedIn() {
	m.access.EXPECT().
		Authenticate(gomock.Any(), "Bearer "+validToken).
		Return(models.User{UserID: 1, Email: "john@example.com"}, nil).
		AnyTimes()
}

func doRequest(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
