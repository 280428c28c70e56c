// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

// authService handles registration, credential checks and the session
// token lifecycle. Passwords are kept only as bcrypt digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens issues and revokes session tokens.
	tokens TokenService

	hasher *utils.PasswordHasher
	clock  clock.Clock
	logger *logger.Logger
}

// NewAuthService constructs an AuthService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, hasher *utils.PasswordHasher, clk clock.Clock, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		hasher:         hasher,
		clock:          clk,
		logger:         logger,
	}
}

// RegisterUser creates a new account from user's email and plaintext
// password. The email is stored lower-cased.
//
// Returns the persisted user (with a server-assigned UserID) or a wrapped
// storage error; store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        normalizeEmail(user.Email),
		PasswordHash: digest,
		RegisteredOn: a.clock.Now().UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user. An unknown email and a wrong
// password are both reported as ErrWrongPassword.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(user.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", user.Email).Msg("login with unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.checkPassword(foundUser, user.Password); err != nil {
		return models.User{}, err
	}

	return foundUser, nil
}

// CreateToken issues a session token for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return a.tokens.IssueToken(ctx, user.UserID)
}

// Logout revokes the token the request was authenticated with.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	return a.tokens.RevokeToken(ctx, tokenString)
}

// ResetPassword replaces the password of userID after checking the old one.
// Outstanding tokens stay valid.
func (a *authService) ResetPassword(ctx context.Context, userID int64, request models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err = a.checkPassword(user, request.OldPassword); err != nil {
		return err
	}

	digest, err := a.hasher.Hash(request.NewPassword)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return err
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, userID, digest); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

func (a *authService) checkPassword(user models.User, password string) error {
	err := a.hasher.Compare(user.PasswordHash, password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		a.logger.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return ErrWrongPassword
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
