// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. A missing token sign key is a
// fatal configuration error: tokens could neither be issued nor verified.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PageSize < 1 || cfg.App.BcryptCost < 4 || cfg.App.BcryptCost > 31 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnsupportedDriver
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxBodyBytes < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.PublicURL != "" {
		u, err := url.Parse(cfg.Server.PublicURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrInvalidServerConfigs
		}
	}

	if cfg.Workers.BlacklistPruneInterval <= 0 || cfg.Workers.BlacklistRetention < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
