// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/pagination"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/models"
)

type storeItemService struct {
	itemRepository store.StoreItemRepository
	paginator      *pagination.Paginator[models.StoreItem]

	clock  clock.Clock
	logger *logger.Logger
}

func NewStoreItemService(itemRepository store.StoreItemRepository, pageSize int, clk clock.Clock, logger *logger.Logger) StoreItemService {
	return &storeItemService{
		itemRepository: itemRepository,
		paginator:      pagination.New[models.StoreItem](pageSize),
		clock:          clk,
		logger:         logger,
	}
}

func (s *storeItemService) CreateItem(ctx context.Context, parent models.Store, request models.StoreItemRequest) (models.StoreItem, error) {
	now := s.clock.Now().UTC().Truncate(time.Microsecond)

	created, err := s.itemRepository.CreateItem(ctx, models.StoreItem{
		StoreID:     parent.ID,
		Name:        normalizeName(request.Name),
		Description: request.Description,
		CreatedAt:   now,
		ModifiedAt:  now,
	})
	if errors.Is(err, store.ErrStoreNotFound) {
		return models.StoreItem{}, ErrStoreNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("store_id", parent.ID).Msg("item creation ended with error")
		return models.StoreItem{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateItem renames current and re-stamps modified_at. The description is
// replaced only when the request carries one.
func (s *storeItemService) UpdateItem(ctx context.Context, current models.StoreItem, request models.StoreItemRequest) (models.StoreItem, error) {
	current.Name = normalizeName(request.Name)
	if request.Description != nil {
		current.Description = request.Description
	}
	current.ModifiedAt = s.clock.Now().UTC().Truncate(time.Microsecond)

	updated, err := s.itemRepository.UpdateItem(ctx, current)
	if errors.Is(err, store.ErrStoreItemNotFound) {
		return models.StoreItem{}, ErrStoreItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", current.ID).Msg("item update ended with error")
		return models.StoreItem{}, fmt.Errorf("item update ended with error: %w", err)
	}

	return updated, nil
}

func (s *storeItemService) DeleteItem(ctx context.Context, current models.StoreItem) error {
	err := s.itemRepository.DeleteItem(ctx, current.StoreID, current.ID)
	if errors.Is(err, store.ErrStoreItemNotFound) {
		return ErrStoreItemNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", current.ID).Msg("item deletion ended with error")
		return fmt.Errorf("item deletion ended with error: %w", err)
	}

	return nil
}

// ListItems returns one page of parent's items, newest first.
func (s *storeItemService) ListItems(ctx context.Context, parent models.Store, request pagination.Request) (pagination.Page[models.StoreItem], error) {
	scope := pagination.ScopeFuncs[models.StoreItem]{
		CountFunc: func(ctx context.Context, filter string) (int, error) {
			return s.itemRepository.CountStoreItems(ctx, parent.ID, filter)
		},
		FetchFunc: func(ctx context.Context, filter string, offset, limit int) ([]models.StoreItem, error) {
			return s.itemRepository.ListStoreItems(ctx, parent.ID, filter, offset, limit)
		},
	}

	page, err := s.paginator.Paginate(ctx, scope, request)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("store_id", parent.ID).Msg("listing items ended with error")
		return pagination.Page[models.StoreItem]{}, err
	}

	return page, nil
}
