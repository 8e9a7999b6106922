// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Domain errors. Callers match them with [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when a user with the same login exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRestaurantNotFound is returned when no restaurant matches the id.
	ErrRestaurantNotFound = errors.New("restaurant was not found")

	// ErrUserAlreadyHasRestaurant is returned when binding a restaurant to a
	// user that already operates one.
	ErrUserAlreadyHasRestaurant = errors.New("user already has a restaurant")

	// ErrItemNotFound is returned when no item matches the public id.
	ErrItemNotFound = errors.New("item was not found")

	// ErrItemAlreadyExists is returned on a public id collision.
	ErrItemAlreadyExists = errors.New("item with this id already exists")

	// ErrNoSalesRecorded is returned by statistics queries with no input rows.
	ErrNoSalesRecorded = errors.New("no sales recorded")
)

// Infrastructure errors wrapping driver failures.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
