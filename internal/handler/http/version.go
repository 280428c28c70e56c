// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.VersionResponse{
		Status:  models.StatusSuccess,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
