// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-ad-board/internal/app"
	"github.com/MKhiriev/go-ad-board/internal/logger"
	"github.com/MKhiriev/go-ad-board/internal/utils"
)

// withRecovery turns a panic in a downstream handler into a 500 response
// with a JSON body. [http.ErrAbortHandler] is re-raised so net/http can
// abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Any("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
