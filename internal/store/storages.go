// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
)

// Storages aggregates every repository backed by one [DB].
type Storages struct {
	UserRepository       UserRepository
	RestaurantRepository RestaurantRepository
	ItemRepository       ItemRepository
	StatsRepository      StatsRepository

	DB *DB
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		RestaurantRepository: NewRestaurantRepository(db, logger),
		ItemRepository:       NewItemRepository(db, logger),
		StatsRepository:      NewStatsRepository(db, logger),
		DB:                   db,
	}
}
