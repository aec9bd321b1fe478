package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Raphalinho91/user-accounts/internal/config"
	grpcHandler "github.com/Raphalinho91/user-accounts/internal/handler/grpc"
	handler "github.com/Raphalinho91/user-accounts/internal/handler/http"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/internal/server"
	"github.com/Raphalinho91/user-accounts/internal/service"
	"github.com/Raphalinho91/user-accounts/internal/store"
	"github.com/Raphalinho91/user-accounts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-accounts-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	httpHandler := handler.NewHandler(services, storages.Pinger, cfg, log)
	healthHandler := grpcHandler.NewHandler(storages.Pinger, log)

	srv, err := server.NewServer(httpHandler.Init(), healthHandler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Str("grpc_address", cfg.Server.GRPCAddress).Str("driver", db.Driver()).Msg("application is running")
	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		db.Close()
		os.Exit(1)
	}
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
