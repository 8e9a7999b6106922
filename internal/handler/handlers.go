// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the API.
package handler

import (
	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/handler/http"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler. In production the handler is served
// by the process itself, so a listen address is required; in development
// the hosting server provides its own listener.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.App.Phase.Precomputed() && cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, http.NewOptions(cfg), logger),
	}, nil
}
