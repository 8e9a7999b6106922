// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurant-api/internal/app"
	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/MKhiriev/go-restaurant-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("restaurant-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = app.NewLogger(cfg.App.Phase, "restaurant-api")
	log.Debug().Str("phase", string(cfg.App.Phase)).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	ctx := context.Background()
	api, err := app.New(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer api.Close()

	if err = api.Run(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
