package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-retail-api/internal/adapter"
	"github.com/MKhiriev/go-retail-api/internal/config"
	"github.com/MKhiriev/go-retail-api/internal/handler/http"
	"github.com/MKhiriev/go-retail-api/internal/logger"
	"github.com/MKhiriev/go-retail-api/internal/server"
	"github.com/MKhiriev/go-retail-api/internal/service"
	"github.com/MKhiriev/go-retail-api/internal/store"
	"github.com/MKhiriev/go-retail-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("retail-api-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "dev" && buildInfo.Known() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var keySource adapter.KeySource
	if cfg.Auth.JWKSURL != "" {
		keySource, err = adapter.NewJWKSAdapter(cfg.Auth.JWKSURL, cfg.Server.RequestTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating JWKS adapter")
		}
	}

	keys, err := service.LoadKeySet(ctx, cfg.Auth, keySource)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading token verification keys")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), keys, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	router := http.NewHandler(services, cfg.Server, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	log.Info().Msg("server stopped")
}
