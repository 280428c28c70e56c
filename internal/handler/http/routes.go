// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/flate"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(withGZipRequest)
	router.Use(h.withBodyLimit)
	router.Use(middleware.Compress(flate.DefaultCompression, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Route("/v1", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)
			r.Post("/auth/reset/password", h.resetPassword)

			r.Route("/storelists", func(r chi.Router) {
				r.Get("/", h.listStores)
				r.Post("/", h.createStore)

				r.Route("/{"+storeIDParam+"}", func(r chi.Router) {
					r.With(h.withStore).Get("/", h.getStore)
					r.With(h.withStore).Put("/", h.renameStore)
					r.With(h.withStore).Delete("/", h.deleteStore)

					r.With(h.withStore).Get("/items", h.listItems)
					r.With(h.withStore).Post("/items", h.createItem)

					r.Route("/items/{"+itemIDParam+"}", func(r chi.Router) {
						r.Use(h.withStoreItem)
						r.Get("/", h.getItem)
						r.Put("/", h.updateItem)
						r.Delete("/", h.deleteItem)
					})
				})
			})
		})
	})

	return router
}
