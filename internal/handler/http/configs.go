// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/taskio/internal/dynamic"
	"github.com/MKhiriev/taskio/internal/logger"
)

func (h *Handler) listConfigs(w http.ResponseWriter, r *http.Request) {
	paths := h.configs.ListConfigs(h.configDir)

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(names); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listConfigs").Msg("cannot write response")
	}
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path, err := h.configPath(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	value, err := h.configs.ReadConfig(path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg("cannot read config")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	text, err := dynamic.EncodeCompact(value)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getConfig").Msg("cannot serialize config")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(text))
}

func (h *Handler) putConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")
	path, err := h.configPath(name)
	if err != nil {
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	value, err := dynamic.Parse(r.Body, name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putConfig").Msg("invalid json was passed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := h.configs.SaveConfig(path, value); err != nil {
		log.Err(err).Str("func", "*Handler.putConfig").Msg("cannot save config")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// configPath resolves a route name to a file inside the config directory.
// Names must be bare file names; the .json extension is appended when
// missing.
func (h *Handler) configPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidConfigName)
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(h.configDir, name), nil
}
