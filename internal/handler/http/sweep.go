// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/taskio/internal/logger"
)

func (h *Handler) sweep(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.tasks.Sweep(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.sweep").Msg("sweep failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Err(err).Str("func", "*Handler.sweep").Msg("cannot write response")
	}
}
