// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoToken is returned when neither the token cookie nor an
	// Authorization header is present.
	ErrNoToken = errors.New("no token provided")

	// ErrInvalidAuthorizationHeader is returned when the Authorization header
	// is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoSession is returned when a handler behind the auth gate finds no
	// session in the request context.
	ErrNoSession = errors.New("no session in request context")

	// ErrMalformedBody is returned when the request body cannot be parsed in
	// its declared content type.
	ErrMalformedBody = errors.New("malformed body")

	// ErrTrailingData is returned when a body holds more than one JSON value
	// or YAML document.
	ErrTrailingData = errors.New("unexpected data after the body")

	// ErrBodyTooLarge is returned when the request body exceeds maxBodySize.
	ErrBodyTooLarge = errors.New("request body too large")

	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
