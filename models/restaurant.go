// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Restaurant owns zero or more menu items.
type Restaurant struct {
	RestaurantID int64     `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r Restaurant) TableName() string {
	return "restaurants"
}

// CreateRestaurantRequest is the body accepted by POST /restaurants.
type CreateRestaurantRequest struct {
	Name string `json:"name" validate:"required,min=3,max=255"`
}
