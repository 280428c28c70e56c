// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("client unauthorized")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrUnsupportedMedia     = errors.New("unsupported media type")
	ErrInternalServerError  = errors.New("internal server error")
	ErrInvalidServerAddress = errors.New("invalid server address")
	ErrNotLoggedIn          = errors.New("not logged in")
)
