// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/validators"
)

type errorMapping struct {
	target error
	status int
	// message overrides target.Error() in the response body.
	message string
}

// errorMappings is checked top to bottom, so specific reasons come before
// the errors that wrap them.
var errorMappings = []errorMapping{
	{target: service.ErrMissingCredential, status: http.StatusUnauthorized},
	{target: service.ErrInvalidToken, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsExpired, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsRevoked, status: http.StatusUnauthorized},
	{target: service.ErrUserNoLongerExists, status: http.StatusUnauthorized},
	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized},
	{target: service.ErrWrongPassword, status: http.StatusUnauthorized},

	{target: service.ErrStoreNotFound, status: http.StatusNotFound},
	{target: service.ErrStoreItemNotFound, status: http.StatusNotFound},
	{target: ErrResourceNotFound, status: http.StatusNotFound},

	{target: store.ErrEmailAlreadyExists, status: http.StatusConflict, message: "user already exists, please sign in"},

	{target: ErrUnsupportedContentType, status: http.StatusUnsupportedMediaType},
	{target: ErrRequestTooLarge, status: http.StatusRequestEntityTooLarge},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrInvalidStoreID, status: http.StatusBadRequest},
	{target: ErrInvalidItemID, status: http.StatusBadRequest},
	{target: validators.ErrInvalidEmail, status: http.StatusBadRequest},
	{target: validators.ErrEmptyPassword, status: http.StatusBadRequest},
	{target: validators.ErrPasswordTooShort, status: http.StatusBadRequest},
	{target: validators.ErrPasswordsDoNotMatch, status: http.StatusBadRequest},
	{target: validators.ErrEmptyName, status: http.StatusBadRequest},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
}

// statusFromError returns the HTTP status and the client-facing message for
// err. Anything unknown is an internal error and its text is not exposed.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message != "" {
				return m.status, m.message
			}
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, "internal server error"
}
