// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/docs"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/negotiate"
	"github.com/MKhiriev/go-restaurant-api/internal/service"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
	"github.com/MKhiriev/go-restaurant-api/internal/validators"
	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/rs/zerolog"
)

// errorStatus binds a sentinel error to its response status and code.
type errorStatus struct {
	target error
	status int
	code   string
}

// errorStatusMap is matched top to bottom, so an error wrapping several
// sentinels gets the status of the first one listed. ErrInvalidToken is
// listed before store.ErrUserNotFound: a token whose subject is gone is a
// 401, not a 404.
var errorStatusMap = []errorStatus{
	{service.ErrTokenIsExpired, http.StatusForbidden, "token_expired"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "unauthorized"},
	{ErrNoToken, http.StatusUnauthorized, "unauthorized"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "unauthorized"},
	{ErrNoSession, http.StatusUnauthorized, "unauthorized"},
	{service.ErrWrongCredentials, http.StatusUnauthorized, "wrong_credentials"},

	{service.ErrUserHasNoRestaurant, http.StatusForbidden, "no_restaurant"},
	{service.ErrForbiddenItem, http.StatusForbidden, "forbidden"},

	{validators.ErrValidationFailed, http.StatusBadRequest, "validation_failed"},
	{ErrMalformedBody, http.StatusBadRequest, "malformed_body"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid_data"},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, "body_too_large"},
	{negotiate.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},

	{store.ErrItemNotFound, http.StatusNotFound, "not_found"},
	{store.ErrRestaurantNotFound, http.StatusNotFound, "not_found"},
	{store.ErrUserNotFound, http.StatusNotFound, "not_found"},
	{store.ErrNoSalesRecorded, http.StatusNotFound, "no_sales"},
	{docs.ErrUnknownFormat, http.StatusNotFound, "not_found"},
	{ErrNotFound, http.StatusNotFound, "not_found"},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, "method_not_allowed"},

	{store.ErrLoginAlreadyExists, http.StatusConflict, "conflict"},
	{store.ErrUserAlreadyHasRestaurant, http.StatusConflict, "conflict"},
	{store.ErrItemAlreadyExists, http.StatusConflict, "conflict"},

	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, "unavailable"},
}

func lookupError(err error) (errorStatus, bool) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry, true
		}
	}
	return errorStatus{}, false
}

func statusFromError(err error) int {
	if entry, ok := lookupError(err); ok {
		return entry.status
	}
	return http.StatusInternalServerError
}

// newErrorResponse renders err for the client. Only the message of the
// matched sentinel is exposed; unmatched errors become a generic 500.
func newErrorResponse(err error, traceID string) (models.ErrorResponse, int) {
	entry, ok := lookupError(err)
	if !ok {
		return models.ErrorResponse{
			Error:   http.StatusText(http.StatusInternalServerError),
			Code:    "internal",
			TraceID: traceID,
		}, http.StatusInternalServerError
	}

	response := models.ErrorResponse{
		Error:   entry.target.Error(),
		Code:    entry.code,
		TraceID: traceID,
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		response.Fields = validationErr.Fields
	}

	return response, entry.status
}

// writeError logs err with the request logger and sends the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	response, status := newErrorResponse(err, w.Header().Get(traceIDHeader))

	level := zerolog.WarnLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	logger.FromRequest(r).WithLevel(level).
		Err(err).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("request failed")

	utils.WriteJSON(w, response, status)
}
