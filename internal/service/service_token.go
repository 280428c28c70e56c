// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

// tokenService signs tokens with a process-wide HMAC secret and keeps
// revoked token strings in the blacklist repository.
type tokenService struct {
	blacklist store.BlacklistRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens carrying another issuer are rejected.
	tokenIssuer string

	// tokenDuration is the lifetime of a newly issued token.
	tokenDuration time.Duration

	clock  clock.Clock
	logger *logger.Logger
}

// NewTokenService constructs a TokenService. An empty sign key is a
// configuration error and is reported here, before any request is served.
func NewTokenService(blacklist store.BlacklistRepository, cfg config.App, clk clock.Clock, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyIsNotSpecified
	}

	return &tokenService{
		blacklist:     blacklist,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		clock:         clk,
		logger:        logger,
	}, nil
}

// IssueToken signs a token for userID that expires tokenDuration from now.
func (s *tokenService) IssueToken(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.clock.Now(), s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken checks tokenString and returns its subject.
//
// A token that fails structure, signature or issuer checks is
// ErrInvalidToken; a well-formed token at or past its expiry is
// ErrTokenIsExpired; a live token found in the blacklist is
// ErrTokenIsRevoked. The blacklist is consulted last.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.clock.Now)
	if err != nil {
		if isOnlyExpired(err) {
			return 0, ErrTokenIsExpired
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, tokenString)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error checking token blacklist")
		return 0, fmt.Errorf("error checking token blacklist: %w", err)
	}
	if revoked {
		return 0, ErrTokenIsRevoked
	}

	return token.UserID, nil
}

// isOnlyExpired reports whether expiry is the sole reason err rejected a
// token. jwt joins every failed claim check, so an expired token with a
// foreign issuer still counts as invalid.
func isOnlyExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired) &&
		!errors.Is(err, jwt.ErrTokenInvalidIssuer) &&
		!errors.Is(err, jwt.ErrTokenNotValidYet)
}

// RevokeToken blacklists tokenString. The entry keeps the token's own
// expiry so the pruner can drop it once the token is dead anyway; when the
// claims cannot be read the expiry falls back to now plus tokenDuration.
func (s *tokenService) RevokeToken(ctx context.Context, tokenString string) error {
	now := s.clock.Now().UTC()

	expiresAt := now.Add(s.tokenDuration)
	if claims, err := utils.ParseJWTClaims(tokenString, s.tokenSignKey); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAtTime().UTC()
	}

	err := s.blacklist.AddToken(ctx, models.BlacklistEntry{
		Token:         tokenString,
		BlacklistedOn: now.Truncate(time.Microsecond),
		ExpiresAt:     expiresAt.Truncate(time.Microsecond),
	})
	if errors.Is(err, store.ErrTokenAlreadyBlacklisted) {
		return nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error revoking token")
		return fmt.Errorf("error revoking token: %w", err)
	}

	return nil
}
