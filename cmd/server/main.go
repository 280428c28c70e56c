// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-store-keeper/internal/clock"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/handler"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/internal/server"
	"github.com/MKhiriev/go-store-keeper/internal/service"
	"github.com/MKhiriev/go-store-keeper/internal/store"
	"github.com/MKhiriev/go-store-keeper/internal/workers"
	"github.com/MKhiriev/go-store-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("go-store-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	clk := clock.Real()

	services, err := service.NewServices(storages, cfg, build, clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(storages, cfg.Workers, clk, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
