// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON envelope written for every failed request.
type ErrorResponse struct {
	// Error is the human-readable message.
	Error string `json:"error"`

	// Code is a stable machine-readable tag, e.g. "token_expired".
	Code string `json:"code,omitempty"`

	// Fields lists per-field validation failures, keyed by JSON field name.
	Fields map[string]string `json:"fields,omitempty"`

	// TraceID echoes the X-Trace-ID of the request.
	TraceID string `json:"trace_id,omitempty"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
