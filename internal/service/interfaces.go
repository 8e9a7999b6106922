// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-restaurant-api/models"
)

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// LoadUser reads the current state of the token subject.
	LoadUser(ctx context.Context, userID int64) (models.User, error)
}

type RestaurantService interface {
	Create(ctx context.Context, owner models.User, request models.CreateRestaurantRequest) (models.Restaurant, error)
	Get(ctx context.Context, restaurantID int64) (models.Restaurant, error)
}

// ItemService manages the menu of one restaurant. Every method takes the
// caller's restaurant id and refuses to touch items of other restaurants.
type ItemService interface {
	List(ctx context.Context, restaurantID int64) ([]models.Item, error)
	Get(ctx context.Context, restaurantID int64, itemID string) (models.Item, error)
	Create(ctx context.Context, restaurantID int64, request models.CreateItemRequest) (models.Item, error)
	Delete(ctx context.Context, restaurantID int64, itemID string) error
}

type StatsService interface {
	BestSeller(ctx context.Context, restaurantID int64) (models.ItemSales, error)
	WorstSeller(ctx context.Context, restaurantID int64) (models.ItemSales, error)
	RecordSale(ctx context.Context, restaurantID int64, itemID string, request models.RecordSaleRequest) (models.Sale, error)
}

type HealthService interface {
	Check(ctx context.Context) (models.HealthResponse, error)
}

// IDGenerator produces public item ids.
type IDGenerator interface {
	Generate() string
}

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
