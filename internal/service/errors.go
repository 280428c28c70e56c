// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("invalid email or password")

	ErrTokenCreationFailed        = errors.New("token creation failed")
	ErrTokenSignKeyIsNotSpecified = errors.New("token sign key is not specified")
	ErrVersionIsNotSpecified      = errors.New("app version is not specified")

	ErrMissingCredential  = errors.New("provide a valid auth token")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken       = errors.New("invalid token, please sign in again")
	ErrTokenIsExpired     = errors.New("signature expired, please sign in again")
	ErrTokenIsRevoked     = errors.New("token was revoked, please sign in again")
	ErrUserNoLongerExists = errors.New("user no longer exists")

	ErrStoreNotFound     = errors.New("store not found")
	ErrStoreItemNotFound = errors.New("item not found")
)
