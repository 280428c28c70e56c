// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

// accessService is the authorization gate in front of every store and item
// operation. Each lookup is a single repository call scoped by the owner
// (or by the parent store), so ownership is decided by the database.
type accessService struct {
	tokens         TokenService
	userRepository store.UserRepository
	storeRepo      store.StoreRepository
	itemRepo       store.StoreItemRepository

	logger *logger.Logger
}

func NewAccessService(tokens TokenService, storages *store.Storages, logger *logger.Logger) AccessService {
	return &accessService{
		tokens:         tokens,
		userRepository: storages.UserRepository,
		storeRepo:      storages.StoreRepository,
		itemRepo:       storages.StoreItemRepository,
		logger:         logger,
	}
}

// Authenticate resolves the user behind an Authorization header.
//
// Every credential problem is reported as ErrUnauthenticated joined with
// the specific reason (ErrMissingCredential, ErrInvalidToken,
// ErrTokenIsExpired, ErrTokenIsRevoked or ErrUserNoLongerExists). Other
// errors are storage failures.
func (s *accessService) Authenticate(ctx context.Context, authorizationHeader string) (models.User, error) {
	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrMissingCredential)
	}

	userID, err := s.tokens.VerifyToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrTokenIsExpired) || errors.Is(err, ErrTokenIsRevoked) {
			log.Debug().Err(err).Msg("token rejected")
			return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Int64("user_id", userID).Msg("token subject no longer exists")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrUserNoLongerExists)
	}
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error loading token subject")
		return models.User{}, fmt.Errorf("error loading token subject: %w", err)
	}

	return user, nil
}

// AuthorizeStore returns the store only if userID owns it.
func (s *accessService) AuthorizeStore(ctx context.Context, userID, storeID int64) (models.Store, error) {
	found, err := s.storeRepo.FindUserStore(ctx, userID, storeID)
	if errors.Is(err, store.ErrStoreNotFound) {
		return models.Store{}, ErrStoreNotFound
	}
	if err != nil {
		return models.Store{}, fmt.Errorf("error authorizing store: %w", err)
	}

	return found, nil
}

// AuthorizeStoreItem authorizes the parent store first, then looks the
// item up inside that store.
func (s *accessService) AuthorizeStoreItem(ctx context.Context, userID, storeID, itemID int64) (models.StoreItem, error) {
	parent, err := s.AuthorizeStore(ctx, userID, storeID)
	if err != nil {
		return models.StoreItem{}, err
	}

	item, err := s.itemRepo.FindStoreItem(ctx, parent.ID, itemID)
	if errors.Is(err, store.ErrStoreItemNotFound) {
		return models.StoreItem{}, ErrStoreItemNotFound
	}
	if err != nil {
		return models.StoreItem{}, fmt.Errorf("error authorizing item: %w", err)
	}

	return item, nil
}
