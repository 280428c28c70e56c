// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-store-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the login email of a user.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a user.
	FieldPassword = "password"

	// FieldPasswordStrength requires the password to be at least
	// MinPasswordLength characters long. Login does not check it.
	FieldPasswordStrength = "password_strength"

	FieldOldPassword          = "old_password"
	FieldNewPassword          = "new_password"
	FieldPasswordConfirmation = "password_confirmation"

	// FieldName targets the name of a store or an item.
	FieldName = "name"
)

// MinPasswordLength is the shortest password accepted on registration and
// reset.
const MinPasswordLength = 5

// StoreValidator checks the inbound payloads of the auth, store and item
// endpoints.
type StoreValidator struct{}

func NewStoreValidator() Validator {
	return &StoreValidator{}
}

func (v *StoreValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	case models.StoreRequest:
		return v.validateName(value.Name, fields...)
	case *models.StoreRequest:
		return v.validateName(value.Name, fields...)

	case models.StoreItemRequest:
		return v.validateName(value.Name, fields...)
	case *models.StoreItemRequest:
		return v.validateName(value.Name, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *StoreValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldPasswordStrength}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordStrength:
			if utf8.RuneCountInString(user.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StoreValidator) validateResetPassword(request models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword, FieldPasswordConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if request.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if utf8.RuneCountInString(request.NewPassword) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldPasswordConfirmation:
			if request.NewPassword != request.PasswordConfirmation {
				return ErrPasswordsDoNotMatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StoreValidator) validateName(name string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare addr-spec such as "john@example.com"; display
// names and angle brackets are rejected.
func isEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && addr.Name == ""
}

// ParseID converts a path segment to a positive row id.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
