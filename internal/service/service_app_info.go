// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

type appInfoService struct {
	version string
}

// NewAppInfoService resolves the version reported by GET /v1/version.
// A configured version wins over the one linked into the binary; having
// neither is an error.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" && build.BuildVersion() != "N/A" {
		version = build.BuildVersion()
		logger.Debug().Str("version", version).Msg("using linked build version")
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
