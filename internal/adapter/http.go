package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bill-desk/internal/config"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/utils"
	"github.com/MKhiriev/go-bill-desk/models"
)

const (
	itemsPath       = "/items"
	generatePDFPath = "/generate-pdf"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress
// (adding "http://" when no scheme is given) and applies the request timeout.
// Every request is tagged with an X-Request-ID produced by ids.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, ids utils.IDGenerator, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(ids)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListItems implements [CatalogAdapter]. A null body is treated as an empty
// catalog.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list items: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.CatalogItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: decode items: %v", ErrMalformedResponse, err)
	}

	h.logger.Debug().Int("count", len(items)).Msg("catalog fetched")
	return items, nil
}

// AddItem implements [CatalogAdapter].
func (h *httpServerAdapter) AddItem(ctx context.Context, item models.NewItem) (models.AddItemResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post(itemsPath)
	if err != nil {
		return models.AddItemResponse{}, fmt.Errorf("%w: add item: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AddItemResponse{}, err
	}

	var added models.AddItemResponse
	if err = json.Unmarshal(resp.Body(), &added); err != nil {
		return models.AddItemResponse{}, fmt.Errorf("%w: decode add item response: %v", ErrMalformedResponse, err)
	}

	return added, nil
}

// GeneratePDF implements [ExportAdapter]. The body is returned untouched;
// the content type is reported but not enforced.
func (h *httpServerAdapter) GeneratePDF(ctx context.Context, lines []models.LineItem) (models.Document, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/pdf").
		SetBody(lines).
		Post(generatePDFPath)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: generate pdf: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	doc := models.Document{
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}
	h.logger.Debug().
		Str("content_type", doc.ContentType).
		Int("size", len(doc.Body)).
		Msg("document received")

	return doc, nil
}
