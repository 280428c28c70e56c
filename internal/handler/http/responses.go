// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

// writeError answers with the status and message mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeMessage(w, r, models.StatusFailed, message, status)
}

func writeMessage(w http.ResponseWriter, r *http.Request, status, message string, code int) {
	writeJSON(w, r, models.Response{Status: status, Message: message}, code)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, code int) {
	if _, err := utils.WriteJSON(w, data, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeJSON reads a JSON body into v. The body must be declared as
// application/json.
func decodeJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return ErrUnsupportedContentType
	}

	if err = json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

// requestURL rebuilds the absolute URL of the current request, without a
// trailing slash, so pagination links point back at the same endpoint.
//
// With Server.PublicURL configured the scheme, host and path prefix come
// from it and the request's Host and X-Forwarded-Proto headers are ignored.
// Otherwise they are taken from the request.
//
// Parameters:
//   - r: the inbound request; its path and raw query are always kept.
//
// Returns:
//   - an absolute *url.URL that is safe to mutate.
func (h *Handler) requestURL(r *http.Request) *url.URL {
	path := r.URL.Path
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if h.publicURL != nil {
		return &url.URL{
			Scheme:   h.publicURL.Scheme,
			Host:     h.publicURL.Host,
			Path:     strings.TrimRight(h.publicURL.Path, "/") + path,
			RawQuery: r.URL.RawQuery,
		}
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded == "http" || forwarded == "https" {
		scheme = forwarded
	}

	return &url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     path,
		RawQuery: r.URL.RawQuery,
	}
}
