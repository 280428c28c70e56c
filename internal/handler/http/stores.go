// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/pagination"
	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/models"
)

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	page, err := h.services.StoreService.ListStores(ctx, userID, pagination.RequestFromURL(h.requestURL(r)))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.StoreListResponse{
		Status:   models.StatusSuccess,
		Previous: page.Previous,
		Next:     page.Next,
		Count:    page.Total,
		Stores:   page.Items,
	}, http.StatusOK)
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	var request models.StoreRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.StoreService.CreateStore(ctx, userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.CreatedStoreResponse{Status: models.StatusSuccess, Store: created}, http.StatusCreated)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	current, ok := storeFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	writeJSON(w, r, models.StoreResponse{Status: models.StatusSuccess, Store: current}, http.StatusOK)
}

func (h *Handler) renameStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, ok := storeFromContext(ctx)
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	var request models.StoreRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	renamed, err := h.services.StoreService.RenameStore(ctx, current, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.StoreResponse{Status: models.StatusSuccess, Store: renamed}, http.StatusOK)
}

func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, ok := storeFromContext(ctx)
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	if err := h.services.StoreService.DeleteStore(ctx, current); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, models.StatusSuccess, "Store deleted successfully", http.StatusOK)
}
