// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command devserver hosts the API in the development phase: documents are
// generated in memory on first request and the interactive docs page is
// mounted at /docs.
package main

import (
	"context"

	"github.com/MKhiriev/go-restaurant-api/internal/app"
	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/internal/server"
)

func main() {
	log := logger.NewDevelopmentLogger("restaurant-api-dev")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Phase = config.PhaseDevelopment

	ctx := context.Background()
	api, err := app.New(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer api.Close()

	srv, err := server.NewServer(api.Handler(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dev server")
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Msg("dev server starting, docs at /docs")
	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("dev server stopped")
	}
}
