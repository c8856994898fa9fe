package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/crypto"
	"github.com/MKhiriev/go-pass-auth/internal/handler"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/server"
	"github.com/MKhiriev/go-pass-auth/internal/service"
	"github.com/MKhiriev/go-pass-auth/internal/store"
	"github.com/MKhiriev/go-pass-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("go-pass-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLoggerWithLevel("go-pass-auth-server", cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHasher)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	storages, err := store.NewStorages(context.Background(), cfg, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, hasher, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
