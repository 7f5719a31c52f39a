package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bill-desk/internal/config"
	stubhttp "github.com/MKhiriev/go-bill-desk/internal/handler/http"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/render"
	"github.com/MKhiriev/go-bill-desk/internal/server"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/internal/utils"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/shopspring/decimal"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// seedItems is the catalog a fresh development server starts with.
var seedItems = []models.NewItem{
	{Name: "Aloo Paratha", Price: decimal.NewFromInt(50)},
	{Name: "Chole Bhature", Price: decimal.NewFromInt(70)},
	{Name: "Samosa", Price: decimal.NewFromInt(20)},
}

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("bill-dev-server", os.Stdout)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting development server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	handler := stubhttp.NewHandler(
		store.NewMemoryCatalog(log, seedItems...),
		render.NewPDFRenderer(log),
		utils.NewUUIDGenerator(),
		log,
	)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server run error")
		stop()
		os.Exit(1)
	}
}
