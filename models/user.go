// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that can authenticate against the API.
//
// A user operates at most one restaurant. RestaurantID is nil until the user
// creates (or is bound to) a restaurant; handlers gated by the restaurant
// check reject such users with 403.
type User struct {
	// UserID is the internal numeric key, used as the token subject.
	UserID int64 `json:"-"`

	// Login is the unique user name used to sign in.
	Login string `json:"login"`

	// Password holds the plaintext password on input only. It is never
	// persisted and never serialized back to clients.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// RestaurantID references the restaurant this user operates, if any.
	RestaurantID *int64 `json:"restaurant_id,omitempty"`

	// CreatedAt is the moment the user row was inserted.
	CreatedAt time.Time `json:"created_at"`
}

// HasRestaurant reports whether the user is associated with a restaurant.
func (u User) HasRestaurant() bool {
	return u.RestaurantID != nil
}

func (u User) TableName() string {
	return "users"
}

// Credentials is the request body of the register and login endpoints.
type Credentials struct {
	Login    string `json:"login" yaml:"login" validate:"required,min=3,max=64"`
	Password string `json:"password" yaml:"password" validate:"required,min=8,max=72"`
}
