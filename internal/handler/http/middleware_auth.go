// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/utils"
)

// Credentials are carried as plain request headers.
const (
	emailHeader    = "email"
	passwordHeader = "password"
)

// auth is an HTTP middleware that authenticates the caller from the "email"
// and "password" request headers.
//
// On success the authenticated [models.User] is stored in the request
// context with [utils.WithUser]. Missing headers are rejected with 400 and
// wrong credentials with 401; an unknown email and a wrong password produce
// the same response.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := h.services.AuthService.Authenticate(ctx, r.Header.Get(emailHeader), r.Header.Get(passwordHeader))
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
