// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/url"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	traceIDs *utils.UUIDGenerator

	// publicURL is the parsed Server.PublicURL, nil when links are built
	// from the request.
	publicURL *url.URL

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	var publicURL *url.URL
	if cfg.PublicURL != "" {
		parsed, err := url.Parse(cfg.PublicURL)
		if err != nil || parsed.Host == "" {
			logger.Warn().Str("public_url", cfg.PublicURL).Msg("ignoring unusable public url")
		} else {
			publicURL = parsed
		}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		traceIDs:  utils.NewUUIDGenerator(),
		publicURL: publicURL,
		logger:    logger,
	}
}
