// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-ad-board/internal/app"
	"github.com/MKhiriev/go-ad-board/internal/utils"
)

const idPattern = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery, h.withMetrics, h.withMaxBodyBytes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service routes
	router.Get("/ping", h.ping)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	// users
	router.Post("/user", h.createUser)
	router.Get("/user"+idPattern, h.getUser)
	router.Patch("/user"+idPattern, h.updateUser)
	router.Delete("/user"+idPattern, h.deleteUser)

	// advertisements
	router.Get("/advertisment"+idPattern, h.getAdvertisement)
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/advertisment", h.createAdvertisement)
		r.Patch("/advertisment"+idPattern, h.updateAdvertisement)
		r.Delete("/advertisment"+idPattern, h.deleteAdvertisement)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
