// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
	"github.com/MKhiriev/go-restaurant-api/models"
)

// createRestaurant creates a restaurant and binds the caller to it.
func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateRestaurantRequest
	if err = h.bind(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	restaurant, err := h.services.RestaurantService.Create(r.Context(), user, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("user_id", user.UserID).
		Int64("restaurant_id", restaurant.RestaurantID).
		Msg("restaurant created")

	utils.WriteJSON(w, restaurant, http.StatusCreated)
}

func (h *Handler) myRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := currentRestaurantID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	restaurant, err := h.services.RestaurantService.Get(r.Context(), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, restaurant, http.StatusOK)
}
