package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bill-desk/internal/adapter"
	"github.com/MKhiriev/go-bill-desk/internal/client"
	"github.com/MKhiriev/go-bill-desk/internal/config"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/service"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/internal/tui"
	"github.com/MKhiriev/go-bill-desk/internal/utils"
	"github.com/MKhiriev/go-bill-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("bill-desk-client", cfg.Log.File)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("starting bill desk")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, utils.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sink, err := store.NewFileDocumentSink(cfg.Export, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create document sink")
	}

	services := service.NewClientServices(serverAdapter, sink, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
