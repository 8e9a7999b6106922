// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/go-chi/chi/v5"
)

const itemDeletedMessage = "item deleted"

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := currentRestaurantID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.ItemService.List(r.Context(), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := currentRestaurantID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.Get(r.Context(), restaurantID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	restaurantID, err := currentRestaurantID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CreateItemRequest
	if err = h.bind(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.Create(r.Context(), restaurantID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("item_id", item.ID).Int64("restaurant_id", restaurantID).Msg("item created")
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	restaurantID, err := currentRestaurantID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	itemID := chi.URLParam(r, "id")
	if err = h.services.ItemService.Delete(r.Context(), restaurantID, itemID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("item_id", itemID).Int64("restaurant_id", restaurantID).Msg("item deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: itemDeletedMessage}, http.StatusOK)
}
