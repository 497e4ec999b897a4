package main

import (
	"context"
	"fmt"

	"github.com/freightex/freightex/internal/config"
	"github.com/freightex/freightex/internal/handler"
	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/server"
	"github.com/freightex/freightex/internal/service"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/internal/workers"
	"github.com/freightex/freightex/migrations"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("freightex-server")

	// a missing .env file is fine: env vars and flags still apply
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repositories.DB.Close()

	if err := migrations.Migrate(repositories.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	services := service.NewServices(repositories, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(repositories, log).Run()

	servers.RunServer()
}

func printBuildInfo() {
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
}
