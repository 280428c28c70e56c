// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

type Services struct {
	TokenService     TokenService
	AuthService      AuthService
	AccessService    AccessService
	StoreService     StoreService
	StoreItemService StoreItemService
	AppInfoService   AppInfoService
}

// NewServices wires every service over storages. Misconfiguration that
// would make requests fail (no sign key, no version) is reported here.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, clk clock.Clock, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(storages.BlacklistRepository, cfg.App, clk, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := utils.NewPasswordHasher(cfg.App.BcryptCost)

	return &Services{
		TokenService: tokenService,
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, tokenService, hasher, clk, logger)),
		AccessService: NewAccessService(tokenService, storages, logger),
		StoreService: NewStoreValidationService().
			Wrap(NewStoreService(storages.StoreRepository, cfg.App.PageSize, clk, logger)),
		StoreItemService: NewStoreItemValidationService().
			Wrap(NewStoreItemService(storages.StoreItemRepository, cfg.App.PageSize, clk, logger)),
		AppInfoService: appInfoService,
	}, nil
}
