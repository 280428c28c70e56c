// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors detected by the handlers before any service is called.
var (
	// ErrUnsupportedContentType is returned when a request body is not
	// declared as application/json.
	ErrUnsupportedContentType = errors.New("content-type must be application/json")

	// ErrInvalidJSON is returned when the body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestTooLarge is returned when the decoded body exceeds
	// Server.MaxBodyBytes.
	ErrRequestTooLarge = errors.New("request body is too large")

	ErrInvalidStoreID = errors.New("please provide a valid store id")
	ErrInvalidItemID  = errors.New("please provide a valid item id")

	// ErrResourceNotFound answers unknown routes and unsupported methods.
	ErrResourceNotFound = errors.New("resource cannot be found")

	// errNoUserInContext means a protected handler was mounted without the
	// auth middleware.
	errNoUserInContext = errors.New("no authenticated user in request context")
)
