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
	"github.com/MKhiriev/go-store-keeper/internal/pagination"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/models"
)

// storeService works on stores the caller has already been authorized for
// (see AccessService). It never looks a store up by id alone.
type storeService struct {
	storeRepository store.StoreRepository
	paginator       *pagination.Paginator[models.Store]

	clock  clock.Clock
	logger *logger.Logger
}

func NewStoreService(storeRepository store.StoreRepository, pageSize int, clk clock.Clock, logger *logger.Logger) StoreService {
	return &storeService{
		storeRepository: storeRepository,
		paginator:       pagination.New[models.Store](pageSize),
		clock:           clk,
		logger:          logger,
	}
}

// CreateStore stores a new list for userID. The name is saved trimmed and
// lower-cased.
func (s *storeService) CreateStore(ctx context.Context, userID int64, request models.StoreRequest) (models.Store, error) {
	now := s.now()

	created, err := s.storeRepository.CreateStore(ctx, models.Store{
		UserID:     userID,
		Name:       normalizeName(request.Name),
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("store creation ended with error")
		return models.Store{}, fmt.Errorf("store creation ended with error: %w", err)
	}

	return created, nil
}

// RenameStore changes the name of an authorized store and re-stamps
// modified_at.
func (s *storeService) RenameStore(ctx context.Context, current models.Store, request models.StoreRequest) (models.Store, error) {
	current.Name = normalizeName(request.Name)
	current.ModifiedAt = s.now()

	updated, err := s.storeRepository.UpdateStore(ctx, current)
	if errors.Is(err, store.ErrStoreNotFound) {
		return models.Store{}, ErrStoreNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("store_id", current.ID).Msg("store update ended with error")
		return models.Store{}, fmt.Errorf("store update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteStore removes an authorized store together with its items.
func (s *storeService) DeleteStore(ctx context.Context, current models.Store) error {
	err := s.storeRepository.DeleteStore(ctx, current.UserID, current.ID)
	if errors.Is(err, store.ErrStoreNotFound) {
		return ErrStoreNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("store_id", current.ID).Msg("store deletion ended with error")
		return fmt.Errorf("store deletion ended with error: %w", err)
	}

	return nil
}

// ListStores returns one page of the stores owned by userID.
func (s *storeService) ListStores(ctx context.Context, userID int64, request pagination.Request) (pagination.Page[models.Store], error) {
	scope := pagination.ScopeFuncs[models.Store]{
		CountFunc: func(ctx context.Context, filter string) (int, error) {
			return s.storeRepository.CountUserStores(ctx, userID, filter)
		},
		FetchFunc: func(ctx context.Context, filter string, offset, limit int) ([]models.Store, error) {
			return s.storeRepository.ListUserStores(ctx, userID, filter, offset, limit)
		},
	}

	page, err := s.paginator.Paginate(ctx, scope, request)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("listing stores ended with error")
		return pagination.Page[models.Store]{}, err
	}

	return page, nil
}

func (s *storeService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

// normalizeName is applied to store and item names before they are saved,
// matching the lower-cased search filter.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
