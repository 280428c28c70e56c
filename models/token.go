// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed bearer token together with its claims.
//
// It embeds [jwt.RegisteredClaims] so a *Token can be passed directly to
// jwt.ParseWithClaims; the subject claim carries the user id.
type Token struct {
	// RegisteredClaims provides the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier parsed from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// ExpiresAtTime returns the "exp" claim, or the zero time when absent.
func (t *Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
