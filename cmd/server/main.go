package main

import (
	"context"
	"fmt"

	"github.com/mlevkova/bijoux-shop/internal/adapter"
	"github.com/mlevkova/bijoux-shop/internal/config"
	handler "github.com/mlevkova/bijoux-shop/internal/handler/http"
	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/internal/server"
	"github.com/mlevkova/bijoux-shop/internal/service"
	"github.com/mlevkova/bijoux-shop/internal/store"
	"github.com/mlevkova/bijoux-shop/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bijoux-shop")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	// schema init is fail-fast: the process refuses to serve requests
	// against a database it could not migrate
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	images, err := store.NewImageFileStorage(cfg.Storage.Files.UploadDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image storage")
	}

	payments := adapter.NewStripeProvider(adapter.StripeConfig{
		SecretKey: cfg.Payments.StripeSecretKey,
	}, log)

	services := service.NewServices(repositories, images, payments, validators.NewRequestValidator(), log)

	handlers := handler.NewHandler(services, cfg.Storage.Files.MaxUploadBytes, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
