package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bill-desk/internal/adapter"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/models"
)

type exportService struct {
	adapter adapter.ExportAdapter
	sink    store.DocumentSink
	logger  *logger.Logger
}

func NewExportService(exportAdapter adapter.ExportAdapter, sink store.DocumentSink, logger *logger.Logger) ExportService {
	return &exportService{adapter: exportAdapter, sink: sink, logger: logger}
}

// ExportBill implements [ExportService]. The bill itself is not modified.
func (e *exportService) ExportBill(ctx context.Context, lines []models.LineItem) (string, error) {
	if len(lines) == 0 {
		e.logger.Warn().Msg("export of empty bill")
		return "", validationError(ErrEmptyBill)
	}

	doc, err := e.adapter.GeneratePDF(ctx, lines)
	if err != nil {
		e.logger.Error().Err(err).Int("lines", len(lines)).Msg("generate pdf")
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	path, err := e.sink.Save(ctx, doc)
	if err != nil {
		e.logger.Error().Err(err).Msg("save bill document")
		return "", fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	e.logger.Info().Str("path", path).Int("lines", len(lines)).Msg("bill exported")
	return path, nil
}
