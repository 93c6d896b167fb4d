// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ad-board/internal/app"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/service"
	"github.com/MKhiriev/go-ad-board/internal/store"
	"github.com/MKhiriev/go-ad-board/internal/utils"
	"github.com/MKhiriev/go-ad-board/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order, so more specific errors must come
// before the ones they wrap.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidJSON}},
	{ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidID}},
	{ErrBodyTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge}},
	{validators.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgValidationError}},
	{store.ErrNothingToUpdate, errorResponse{http.StatusBadRequest, app.MsgValidationError}},

	{service.ErrMissingCredentials, errorResponse{http.StatusBadRequest, app.MsgEmptyCredentials}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrNotAdvertisementOwner, errorResponse{http.StatusForbidden, app.MsgNotOwner}},
	{service.ErrDatabaseUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgDatabaseUnavailable}},

	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrAdvertisementNotFound, errorResponse{http.StatusNotFound, app.MsgAdvertisementNotFound}},
	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},
}

func responseFromError(err error) (int, any) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Fields
	}

	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.status, r.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError converts err into a JSON error body. Unmapped errors are
// logged and reported as 500 without exposing their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
