// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail        = errors.New("invalid email address")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordsDoNotMatch = errors.New("new password and confirmation do not match")
	ErrEmptyName           = errors.New("missing name attribute")
)
