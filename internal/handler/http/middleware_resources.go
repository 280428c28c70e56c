// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-store-keeper/internal/utils"
	"github.com/MKhiriev/go-store-keeper/internal/validators"
	"github.com/MKhiriev/go-store-keeper/models"
)

type resourceKey int

const (
	storeKey resourceKey = iota
	itemKey
)

const (
	storeIDParam = "storeID"
	itemIDParam  = "itemID"
)

// withStore loads the {storeID} store of the authenticated user. A store
// owned by someone else answers 404 exactly like a missing one.
func (h *Handler) withStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, r, errNoUserInContext)
			return
		}

		storeID, ok := validators.ParseID(chi.URLParam(r, storeIDParam))
		if !ok {
			writeError(w, r, ErrInvalidStoreID)
			return
		}

		found, err := h.services.AccessService.AuthorizeStore(ctx, userID, storeID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, storeKey, found)))
	})
}

// withStoreItem loads the {itemID} item inside the {storeID} store of the
// authenticated user.
func (h *Handler) withStoreItem(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := utils.GetUserIDFromContext(ctx)
		if !ok {
			writeError(w, r, errNoUserInContext)
			return
		}

		storeID, ok := validators.ParseID(chi.URLParam(r, storeIDParam))
		if !ok {
			writeError(w, r, ErrInvalidStoreID)
			return
		}

		itemID, ok := validators.ParseID(chi.URLParam(r, itemIDParam))
		if !ok {
			writeError(w, r, ErrInvalidItemID)
			return
		}

		item, err := h.services.AccessService.AuthorizeStoreItem(ctx, userID, storeID, itemID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, itemKey, item)))
	})
}

func storeFromContext(ctx context.Context) (models.Store, bool) {
	s, ok := ctx.Value(storeKey).(models.Store)
	return s, ok
}

func itemFromContext(ctx context.Context) (models.StoreItem, bool) {
	item, ok := ctx.Value(itemKey).(models.StoreItem)
	return item, ok
}
