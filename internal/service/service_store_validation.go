// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/pagination"
	"github.com/MKhiriev/go-store-keeper/internal/validators"
	"github.com/MKhiriev/go-store-keeper/models"
)

type StoreValidationService struct {
	inner     StoreService
	validator validators.Validator
}

func NewStoreValidationService() StoreServiceWrapper {
	return &StoreValidationService{
		validator: validators.NewStoreValidator(),
	}
}

func (v *StoreValidationService) Wrap(inner StoreService) StoreService {
	v.inner = inner
	return v
}

func (v *StoreValidationService) CreateStore(ctx context.Context, userID int64, request models.StoreRequest) (models.Store, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Store{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateStore(ctx, userID, request)
}

func (v *StoreValidationService) RenameStore(ctx context.Context, current models.Store, request models.StoreRequest) (models.Store, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Store{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RenameStore(ctx, current, request)
}

func (v *StoreValidationService) DeleteStore(ctx context.Context, current models.Store) error {
	return v.inner.DeleteStore(ctx, current)
}

func (v *StoreValidationService) ListStores(ctx context.Context, userID int64, request pagination.Request) (pagination.Page[models.Store], error) {
	return v.inner.ListStores(ctx, userID, request)
}

type StoreItemValidationService struct {
	inner     StoreItemService
	validator validators.Validator
}

func NewStoreItemValidationService() StoreItemServiceWrapper {
	return &StoreItemValidationService{
		validator: validators.NewStoreValidator(),
	}
}

func (v *StoreItemValidationService) Wrap(inner StoreItemService) StoreItemService {
	v.inner = inner
	return v
}

func (v *StoreItemValidationService) CreateItem(ctx context.Context, parent models.Store, request models.StoreItemRequest) (models.StoreItem, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateItem(ctx, parent, request)
}

func (v *StoreItemValidationService) UpdateItem(ctx context.Context, current models.StoreItem, request models.StoreItemRequest) (models.StoreItem, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.StoreItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateItem(ctx, current, request)
}

func (v *StoreItemValidationService) DeleteItem(ctx context.Context, current models.StoreItem) error {
	return v.inner.DeleteItem(ctx, current)
}

func (v *StoreItemValidationService) ListItems(ctx context.Context, parent models.Store, request pagination.Request) (pagination.Page[models.StoreItem], error) {
	return v.inner.ListItems(ctx, parent, request)
}
