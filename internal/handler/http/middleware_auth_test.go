// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/models"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		reason  error
		message string
	}{
		{name: "no header", header: "", reason: service.ErrMissingCredential, message: "provide a valid auth token"},
		{name: "malformed", header: "Bearer a.b.c", reason: service.ErrInvalidToken, message: "invalid token, please sign in again"},
		{name: "expired", header: "Bearer old", reason: service.ErrTokenIsExpired, message: "signature expired, please sign in again"},
		{name: "revoked", header: "Bearer revoked", reason: service.ErrTokenIsRevoked, message: "token was revoked, please sign in again"},
		{name: "deleted user", header: "Bearer orphan", reason: service.ErrUserNoLongerExists, message: "user no longer exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.access.EXPECT().Authenticate(gomock.Any(), tt.header).
				Return(models.User{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, tt.reason))

			req := httptest.NewRequest(http.MethodGet, "/v1/storelists", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, models.Response{Status: "failed", Message: tt.message}, decodeResponse[models.Response](t, rec))
		})
	}
}

func TestAuth_StorageFailureIsInternal(t *testing.T) {
	router, m := newTestRouter(t)
	m.access.EXPECT().Authenticate(gomock.Any(), "Bearer x").Return(models.User{}, errors.New("db is down"))

	rec := doRequest(router, http.MethodGet, "/v1/storelists", "", "x")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuth_PublicRoutesSkipAuthentication(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := doRequest(router, http.MethodGet, "/v1/version", "", "whatever")
	assert.Equal(t, http.StatusOK, rec.Code)
}
