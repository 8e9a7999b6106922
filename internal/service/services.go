// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
)

type Services struct {
	AuthService       AuthService
	RestaurantService RestaurantService
	ItemService       ItemService
	StatsService      StatsService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	healthService, err := NewHealthService(storages.DB, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		RestaurantService: NewRestaurantService(storages.RestaurantRepository, logger),
		ItemService:       NewItemService(storages.ItemRepository, utils.NewPublicIDGenerator(), logger),
		StatsService:      NewStatsService(storages.StatsRepository, storages.ItemRepository, logger),
		HealthService:     healthService,
	}, nil
}
