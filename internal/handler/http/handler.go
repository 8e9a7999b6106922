// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/docs"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/service"
	"github.com/MKhiriev/go-restaurant-api/internal/validators"
)

// Options carries the configuration the transport layer depends on.
type Options struct {
	Phase          config.Phase
	Version        string
	SecureCookie   bool
	TokenDuration  time.Duration
	RequestTimeout time.Duration
	DocsDir        string
	DocsTitle      string
}

// NewOptions picks the transport settings out of cfg.
func NewOptions(cfg config.StructuredConfig) Options {
	return Options{
		Phase:          cfg.App.Phase,
		Version:        cfg.App.Version,
		SecureCookie:   cfg.App.SecureCookie,
		TokenDuration:  cfg.App.TokenDuration,
		RequestTimeout: cfg.Server.RequestTimeout,
		DocsDir:        cfg.Docs.Dir,
		DocsTitle:      cfg.Docs.Title,
	}
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	options   Options

	// publisher is set by Init once every route is registered.
	publisher docs.Publisher

	logger *logger.Logger
}

func NewHandler(services *service.Services, options Options, logger *logger.Logger) *Handler {
	logger.Info().Str("phase", string(options.Phase)).Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewStructValidator(),
		options:   options,
		logger:    logger,
	}
}
