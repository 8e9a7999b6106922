// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurant-api/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// Returns ErrLoginAlreadyExists on a duplicate login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns ErrUserNotFound when no user has the login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindUserByID returns ErrUserNotFound when no user has the id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// RestaurantRepository persists restaurants and their operators.
type RestaurantRepository interface {
	// CreateRestaurant inserts a restaurant and binds ownerID to it in one
	// transaction. Returns ErrUserAlreadyHasRestaurant when the owner
	// already operates a restaurant.
	CreateRestaurant(ctx context.Context, ownerID int64, name string) (models.Restaurant, error)

	// GetRestaurant returns ErrRestaurantNotFound for an unknown id.
	GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error)
}

// ItemRepository persists menu items keyed by their public id.
type ItemRepository interface {
	// GetAllFrom lists the items of a restaurant in creation order.
	GetAllFrom(ctx context.Context, restaurantID int64) ([]models.Item, error)

	// Get returns ErrItemNotFound for an unknown public id.
	Get(ctx context.Context, itemID string) (models.Item, error)

	// Create inserts the item and returns its public id.
	Create(ctx context.Context, item models.NewItem) (string, error)

	// Delete returns ErrItemNotFound when nothing was deleted.
	Delete(ctx context.Context, itemID string) error
}

// StatsRepository aggregates recorded sales.
type StatsRepository interface {
	// MostSold returns the restaurant's item with the highest sold quantity.
	// Returns ErrNoSalesRecorded when none of its items was ever sold.
	MostSold(ctx context.Context, restaurantID int64) (models.ItemSales, error)

	// LeastSold returns the restaurant's item with the lowest sold quantity,
	// counting never-sold items as zero. Returns ErrNoSalesRecorded when the
	// restaurant has no items.
	LeastSold(ctx context.Context, restaurantID int64) (models.ItemSales, error)

	// RecordSale stores a sale of quantity units of the item.
	RecordSale(ctx context.Context, itemID string, quantity int64) (models.Sale, error)
}
