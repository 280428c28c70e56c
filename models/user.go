// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns stores.
// The plaintext password only ever travels inbound (register, login) and is
// replaced by PasswordHash before anything is persisted.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password is the plaintext password supplied by the client.
	// It is never persisted and never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest of the password.
	PasswordHash string `json:"-"`

	// RegisteredOn is the timestamp when the account was created.
	RegisteredOn time.Time `json:"registered_on"`
}

// ResetPasswordRequest is the payload of the password reset endpoint.
type ResetPasswordRequest struct {
	OldPassword          string `json:"oldPassword"`
	NewPassword          string `json:"newPassword"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}
