// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/utils"
)

// auth resolves the user behind the Authorization header with
// [service.AccessService.Authenticate] and stores the user id and the raw
// token in the request context. Every failure is answered with 401 and the
// most specific reason the service reported.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		authHeader := r.Header.Get("Authorization")

		user, err := h.services.AccessService.Authenticate(ctx, authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		// Authenticate has already accepted the header.
		tokenString, _ := utils.ParseBearerToken(authHeader)

		ctx = utils.WithUserID(ctx, user.UserID)
		ctx = utils.WithToken(ctx, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
