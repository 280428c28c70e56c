// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied after every other source.
const (
	DefaultTokenIssuer            = "go-store-keeper"
	DefaultTokenDuration          = time.Hour
	DefaultBcryptCost             = 12
	DefaultPageSize               = 10
	DefaultDriver                 = DriverPostgres
	DefaultHTTPAddress            = "localhost:8080"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultMaxBodyBytes           = 1 << 20
	DefaultBlacklistPruneInterval = time.Hour
	DefaultBlacklistRetention     = time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			PageSize:      DefaultPageSize,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDriver},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			ShutdownTimeout:    DefaultShutdownTimeout,
			CORSAllowedOrigins: []string{"*"},
			MaxBodyBytes:       DefaultMaxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			BlacklistPruneInterval: DefaultBlacklistPruneInterval,
			BlacklistRetention:     DefaultBlacklistRetention,
		},
	}
}
