// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-store-keeper/internal/adapter"
	"github.com/MKhiriev/go-store-keeper/internal/client"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/MKhiriev/go-store-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewClientLogger("go-store-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessionDir, err := client.DefaultSessionDir()
	if err != nil {
		log.Fatal().Err(err).Msg("resolve session dir")
	}

	app := client.NewApp(serverAdapter, client.NewFileSession(sessionDir), os.Stdout, log)
	if err = app.Run(os.Args[1:]); err != nil {
		client.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
