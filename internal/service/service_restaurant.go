// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
	"github.com/MKhiriev/go-restaurant-api/models"
)

type restaurantService struct {
	restaurantRepository store.RestaurantRepository

	logger *logger.Logger
}

func NewRestaurantService(restaurantRepository store.RestaurantRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		logger:               logger,
	}
}

// Create opens a restaurant operated by owner. An owner already bound to a
// restaurant yields store.ErrUserAlreadyHasRestaurant without touching the
// database.
func (s *restaurantService) Create(ctx context.Context, owner models.User, request models.CreateRestaurantRequest) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	if owner.HasRestaurant() {
		log.Warn().Int64("user_id", owner.UserID).Int64("restaurant_id", *owner.RestaurantID).Msg("user already operates a restaurant")
		return models.Restaurant{}, store.ErrUserAlreadyHasRestaurant
	}
	if request.Name == "" {
		return models.Restaurant{}, ErrInvalidDataProvided
	}

	restaurant, err := s.restaurantRepository.CreateRestaurant(ctx, owner.UserID, request.Name)
	if err != nil {
		log.Err(err).Int64("user_id", owner.UserID).Msg("restaurant creation ended with error")
		return models.Restaurant{}, fmt.Errorf("restaurant creation ended with error: %w", err)
	}

	return restaurant, nil
}

func (s *restaurantService) Get(ctx context.Context, restaurantID int64) (models.Restaurant, error) {
	restaurant, err := s.restaurantRepository.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("getting restaurant failed: %w", err)
	}

	return restaurant, nil
}
