// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the server and
// client: typed context keys, password digests, bearer token signing and
// parsing, JSON responses, the HTTP client and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the id of the authenticated user.
	UserIDCtxKey = contextKey("userID")

	// TokenCtxKey stores the raw bearer token the request was authenticated
	// with. Logout revokes exactly this string.
	TokenCtxKey = contextKey("token")
)

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// WithToken returns a copy of ctx carrying the raw bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetUserIDFromContext retrieves the authenticated user id.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTokenFromContext retrieves the raw bearer token.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}
