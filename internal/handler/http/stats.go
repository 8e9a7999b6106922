// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/utils"
	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) bestSeller(w http.ResponseWriter, r *http.Request) {
	h.writeSalesRanking(w, r, h.services.StatsService.BestSeller)
}

func (h *Handler) worstSeller(w http.ResponseWriter, r *http.Request) {
	h.writeSalesRanking(w, r, h.services.StatsService.WorstSeller)
}

func (h *Handler) writeSalesRanking(w http.ResponseWriter, r *http.Request, rank func(ctx context.Context, restaurantID int64) (models.ItemSales, error)) {
	restaurantID, err := currentRestaurantID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sales, err := rank(r.Context(), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, sales, http.StatusOK)
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := currentRestaurantID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.RecordSaleRequest
	if err = h.bind(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	sale, err := h.services.StatsService.RecordSale(r.Context(), restaurantID, chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, sale, http.StatusCreated)
}
