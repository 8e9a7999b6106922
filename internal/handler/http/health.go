// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteJSON(w, status, statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
