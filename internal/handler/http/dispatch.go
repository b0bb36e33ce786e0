// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/logger"
	"github.com/MKhiriev/taskio/models"
)

// dispatchRequest is the body of POST /api/dispatch.
type dispatchRequest struct {
	Method         string        `json:"method"`
	URL            string        `json:"url"`
	Payload        dynamic.Value `json:"payload"`
	TimeoutSeconds int           `json:"timeout_seconds"`
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.dispatch").Msg("invalid json was passed")
		http.Error(w, "invalid json was passed", http.StatusBadRequest)
		return
	}

	if req.URL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	timeout := h.dispatchTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}

	result, err := h.dispatcher.Send(r.Context(), models.RequestSpec{
		Method:  req.Method,
		URL:     req.URL,
		Payload: req.Payload,
		Timeout: timeout,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.dispatch").Msg("dispatch failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Err(err).Str("func", "*Handler.dispatch").Msg("cannot write response")
	}
}
