// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-store-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates an HMAC-SHA256 signed token for userID.
//
// The token carries the standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//
// Claims are encoded with second precision, so exp is truncated to the
// second.
func GenerateJWTToken(issuer string, userID int64, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and returns its claims with the parsed UserID.
//
// Expiry is evaluated against now(); a token is valid while now() is
// strictly before exp. The signature is checked before any claim, so a
// tampered token is reported as invalid even when it is also expired.
// Errors wrap the jwt sentinel errors (for example jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, hmacKey(tokenSignKey),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", jwt.ErrTokenInvalidClaims, err)
	}

	claims.SignedString = tokenString
	claims.UserID = userID
	return *claims, nil
}

// ParseJWTClaims verifies the signature of tokenString but skips claim
// validation, so the claims of an already expired token can still be read.
func ParseJWTClaims(tokenString, tokenSignKey string) (models.Token, error) {
	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, hmacKey(tokenSignKey),
		jwt.WithoutClaimsValidation(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing token: %w", err)
	}

	claims.SignedString = tokenString
	return *claims, nil
}

func hmacKey(signKey string) jwt.Keyfunc {
	return func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}
}

// ParseBearerToken extracts the token from an Authorization header of the
// form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
