package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bill-desk/internal/adapter"
	"github.com/MKhiriev/go-bill-desk/internal/app"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/validators"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	adapter   adapter.CatalogAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewCatalogService(catalogAdapter adapter.CatalogAdapter, validator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{adapter: catalogAdapter, validator: validator, logger: logger}
}

func (c *catalogService) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	items, err := c.adapter.ListItems(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("fetch catalog")
		return nil, fmt.Errorf("%w: %w", ErrCatalogFetch, err)
	}

	if items == nil {
		items = []models.CatalogItem{}
	}
	return items, nil
}

func (c *catalogService) AddItem(ctx context.Context, input models.NewItemInput) (string, error) {
	if err := c.validator.Validate(ctx, input); err != nil {
		c.logger.Warn().Err(err).Msg("new item rejected")
		return "", validationError(err)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil {
		return "", validationError(fmt.Errorf("%w: %v", validators.ErrInvalidNewItem, err))
	}

	resp, err := c.adapter.AddItem(ctx, models.NewItem{
		Name:  strings.TrimSpace(input.Name),
		Price: price,
	})
	if err != nil {
		addErr := &CatalogAddError{Reason: addItemReason(err), Err: err}
		c.logger.Error().Err(err).Str("reason", addErr.Reason).Msg("add catalog item")
		return "", addErr
	}

	c.logger.Info().Str("name", input.Name).Msg("catalog item added")
	return resp.Message, nil
}

func addItemReason(err error) string {
	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Reason != "" {
			return serverErr.Reason
		}
		return app.MsgAddItemFailed
	}

	return app.MsgAddItemTransport
}
