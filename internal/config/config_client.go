// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client configuration assembled from the environment,
// an optional JSON file and defaults. The client parses its own
// subcommand flags, so the server flag set is not consulted here.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults()
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building client config: %w", b.err)
	}

	merged, err := b.merge()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    merged.Adapter.HTTPAddress,
			RequestTimeout: merged.Adapter.RequestTimeout,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
