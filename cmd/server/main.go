package main

import (
	"context"
	"fmt"

	"github.com/mlevkin/feedboard/internal/config"
	"github.com/mlevkin/feedboard/internal/handler/http"
	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/render"
	"github.com/mlevkin/feedboard/internal/server"
	"github.com/mlevkin/feedboard/internal/service"
	"github.com/mlevkin/feedboard/internal/store"
	"github.com/mlevkin/feedboard/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("feedboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, cfg.App, log)

	services, err := service.NewServices(repos, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	renderer, err := render.NewRenderer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	handler := http.NewHandler(services, repos.Sessions, renderer, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(repos.Sessions, cfg.Workers, log).Run()

	srv.RunServer()
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
