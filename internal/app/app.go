// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires storage, services and transport into a runnable API.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/handler"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/server"
	"github.com/MKhiriev/go-restaurant-api/internal/service"
	"github.com/MKhiriev/go-restaurant-api/internal/store"
)

// App is an assembled API ready to be served.
type App struct {
	cfg     config.StructuredConfig
	db      *store.DB
	handler http.Handler
	logger  *logger.Logger
}

// New connects to storage, applies migrations and registers every route.
// In production the API documents are written to disk before New returns.
func New(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to storage: %w", err)
	}

	a, err := assemble(db, cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func assemble(db *store.DB, cfg config.StructuredConfig, log *logger.Logger) (*App, error) {
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	router, err := handlers.HTTP.Init()
	if err != nil {
		return nil, fmt.Errorf("error registering routes: %w", err)
	}

	return &App{
		cfg:     cfg,
		db:      db,
		handler: router,
		logger:  log,
	}, nil
}

// Handler is the root HTTP handler, for hosting by an external server.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves the API until ctx is cancelled or a stop signal arrives. The
// listener is only started in production; in development Run returns
// immediately and the hosting server is expected to serve Handler.
func (a *App) Run(ctx context.Context) error {
	if !a.cfg.App.Phase.Precomputed() {
		a.logger.Info().
			Str("phase", string(a.cfg.App.Phase)).
			Msg("no listener is started outside production, serve Handler from the hosting server")
		return nil
	}

	srv, err := server.NewServer(a.handler, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

// Close releases the storage connection.
func (a *App) Close() error {
	return a.db.Close()
}

// NewLogger returns the logger matching the deployment phase: JSON in
// production, human-readable console output in development.
func NewLogger(phase config.Phase, role string) *logger.Logger {
	if phase.Precomputed() {
		return logger.NewLogger(role)
	}
	return logger.NewDevelopmentLogger(role)
}
