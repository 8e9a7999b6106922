// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublicIDLength is the fixed length of an item's external identifier.
const PublicIDLength = 16

// Item is a single menu entry of a restaurant.
//
// ID is the public identifier exposed to clients; the internal numeric key
// never leaves the store package.
type Item struct {
	// ID is the 16-character opaque public identifier.
	ID string `json:"id"`

	// Name is the display name, 3 to 255 characters long.
	Name string `json:"name"`

	// Price is expressed in cents and is never negative.
	Price int64 `json:"price"`

	// Description is optional and at most 255 characters long.
	Description *string `json:"description,omitempty"`

	// RestaurantID is the owning restaurant.
	RestaurantID int64 `json:"-"`
}

func (i Item) TableName() string {
	return "items"
}

// CreateItemRequest is the body accepted by POST /items.
//
// Unknown fields are rejected by the body decoder before validation runs.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=255"`
	Price       int64   `json:"price" validate:"min=0"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// NewItem is the set of fields handed to the item repository on creation.
type NewItem struct {
	PublicID     string
	Name         string
	Price        int64
	Description  *string
	RestaurantID int64
}
