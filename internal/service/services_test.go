// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/mock"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/models"
)

func testStorages(t *testing.T) *store.Storages {
	ctrl := gomock.NewController(t)
	return &store.Storages{
		UserRepository:      mock.NewMockUserRepository(ctrl),
		BlacklistRepository: mock.NewMockBlacklistRepository(ctrl),
		StoreRepository:     mock.NewMockStoreRepository(ctrl),
		StoreItemRepository: mock.NewMockStoreItemRepository(ctrl),
	}
}

func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{App: tokenConfig}
	cfg.App.Version = "1.0.0"
	cfg.App.BcryptCost = 4
	cfg.App.PageSize = 5

	services, err := NewServices(testStorages(t), cfg, models.NewAppBuildInfo("", "", ""), clock.Fake(issuedAt), logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &AuthValidationService{}, services.AuthService)
	assert.IsType(t, &StoreValidationService{}, services.StoreService)
	assert.IsType(t, &StoreItemValidationService{}, services.StoreItemService)
	assert.NotNil(t, services.TokenService)
	assert.NotNil(t, services.AccessService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_Misconfigured(t *testing.T) {
	noKey := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}
	_, err := NewServices(testStorages(t), noKey, models.NewAppBuildInfo("", "", ""), clock.Fake(issuedAt), logger.Nop())
	assert.ErrorIs(t, err, ErrTokenSignKeyIsNotSpecified)

	noVersion := &config.StructuredConfig{App: tokenConfig}
	_, err = NewServices(testStorages(t), noVersion, models.NewAppBuildInfo("", "", ""), clock.Fake(issuedAt), logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
