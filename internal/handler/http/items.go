// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-store-keeper/internal/pagination"
	"github.com/MKhiriev/go-store-keeper/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parent, ok := storeFromContext(ctx)
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	page, err := h.services.StoreItemService.ListItems(ctx, parent, pagination.RequestFromURL(h.requestURL(r)))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.StoreItemListResponse{
		Status:   models.StatusSuccess,
		Previous: page.Previous,
		Next:     page.Next,
		Count:    page.Total,
		Items:    page.Items,
	}, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parent, ok := storeFromContext(ctx)
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	var request models.StoreItemRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.StoreItemService.CreateItem(ctx, parent, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.StoreItemResponse{Status: models.StatusSuccess, Item: created}, http.StatusCreated)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, ok := itemFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	writeJSON(w, r, models.StoreItemResponse{Status: models.StatusSuccess, Item: item}, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, ok := itemFromContext(ctx)
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	var request models.StoreItemRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.StoreItemService.UpdateItem(ctx, current, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.StoreItemResponse{Status: models.StatusSuccess, Item: updated}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, ok := itemFromContext(ctx)
	if !ok {
		writeError(w, r, ErrResourceNotFound)
		return
	}

	if err := h.services.StoreItemService.DeleteItem(ctx, current); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, r, models.StatusSuccess,
		fmt.Sprintf("Successfully deleted the item from store with id %d", current.StoreID), http.StatusOK)
}
