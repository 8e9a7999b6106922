// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong login or password")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrInvalidToken        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrUserHasNoRestaurant = errors.New("user has no associated restaurant")
	ErrForbiddenItem       = errors.New("item belongs to another restaurant")
	ErrPublicIDExhausted   = errors.New("could not allocate a unique item id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)
