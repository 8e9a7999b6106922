// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP listener of the API.
//
// It owns the listener lifecycle: startup, stop on SIGTERM, SIGINT or
// SIGQUIT (or cancellation of the parent context) and graceful shutdown
// bounded by the configured timeout.
package server
