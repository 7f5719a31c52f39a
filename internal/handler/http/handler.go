package http

import (
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/render"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/internal/utils"
)

type Handler struct {
	catalog  store.CatalogRepository
	renderer render.BillRenderer
	ids      utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(catalog store.CatalogRepository, renderer render.BillRenderer, ids utils.IDGenerator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		catalog:  catalog,
		renderer: renderer,
		ids:      ids,
		logger:   logger,
	}
}
