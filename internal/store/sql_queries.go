// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-restaurant-api/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	usersTable       = models.User{}.TableName()
	restaurantsTable = models.Restaurant{}.TableName()
	itemsTable       = models.Item{}.TableName()
	salesTable       = models.Sale{}.TableName()

	userColumns = []string{"user_id", "login", "password_hash", "restaurant_id", "created_at"}

	restaurantColumns = []string{"restaurant_id", "name", "created_at"}

	itemColumns = []string{"public_id", "name", "price", "description", "restaurant_id"}
)

// itemSalesQuery selects the restaurant's items with their total sold
// quantity. With sold == true only items with at least one sale take part.
func (db *DB) itemSalesQuery(restaurantID int64, sold bool, order string) sq.SelectBuilder {
	query := db.builder.
		Select(
			"i.public_id",
			"i.name",
			"i.price",
			"i.description",
			"i.restaurant_id",
			"COALESCE(CAST(SUM(s.quantity) AS BIGINT), 0) AS sold",
		).
		From(itemsTable + " i")

	if sold {
		query = query.Join(salesTable + " s ON s.item_id = i.item_id")
	} else {
		query = query.LeftJoin(salesTable + " s ON s.item_id = i.item_id")
	}

	return query.
		Where(sq.Eq{"i.restaurant_id": restaurantID}).
		GroupBy("i.item_id", "i.public_id", "i.name", "i.price", "i.description", "i.restaurant_id").
		OrderBy("sold "+order, "i.item_id ASC").
		Limit(1)
}
