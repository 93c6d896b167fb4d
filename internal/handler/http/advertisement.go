// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/utils"
	"github.com/MKhiriev/go-ad-board/models"
)

func (h *Handler) createAdvertisement(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	var in models.AdvertisementCreate
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	adv, err := h.services.AdvertisementService.CreateAdvertisement(r.Context(), owner, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("advertisement_id", adv.ID).Int64("owner_id", owner.UserID).Msg("advertisement created")
	_, _ = utils.WriteJSON(w, adv, http.StatusOK)
}

func (h *Handler) getAdvertisement(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	adv, err := h.services.AdvertisementService.GetAdvertisement(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, adv, http.StatusOK)
}

func (h *Handler) updateAdvertisement(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.AdvertisementPatch
	if err = decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.AdvertisementService.UpdateAdvertisement(r.Context(), user, id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("advertisement_id", id).Msg("advertisement updated")
	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, errNoUserInContext)
		return
	}

	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.AdvertisementService.DeleteAdvertisement(r.Context(), user, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("advertisement_id", id).Msg("advertisement deleted")
	_, _ = utils.WriteJSON(w, deleted, http.StatusOK)
}
