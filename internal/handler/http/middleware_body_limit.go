// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/config"
)

// withBodyLimit caps every request body at Server.MaxBodyBytes. It runs
// after withGZipRequest, so the limit applies to the decompressed stream
// and a small gzip payload cannot expand without bound. A non-positive
// setting falls back to config.DefaultMaxBodyBytes.
//
// Reading past the limit fails with *http.MaxBytesError, which decodeJSON
// reports as ErrRequestTooLarge (413).
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	limit := h.cfg.MaxBodyBytes
	if limit <= 0 {
		limit = config.DefaultMaxBodyBytes
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
