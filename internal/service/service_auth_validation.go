// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/validators"
	"github.com/MKhiriev/go-store-keeper/models"
)

// AuthValidationService checks credentials payloads before they reach the
// wrapped AuthService. Validation failures wrap ErrInvalidDataProvided.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewStoreValidator(),
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, validators.FieldEmail, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, user)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("%w: %w", ErrUnauthenticated, ErrMissingCredential)
	}

	return v.inner.Logout(ctx, tokenString)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, userID int64, request models.ResetPasswordRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ResetPassword(ctx, userID, request)
}
