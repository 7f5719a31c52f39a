// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the billing client and
// the catalog server.
//
// [CatalogAdapter] covers GET/POST /items and [ExportAdapter] covers
// POST /generate-pdf. [NewHTTPServerAdapter] returns a resty-based
// implementation of both.
//
// Failures are reported with the sentinel values in errors.go so callers can
// use [errors.Is]: [ErrTransport] when a request could not complete,
// [ErrMalformedResponse] when a success body cannot be decoded, and one
// status sentinel (e.g. [ErrConflict] for 409) wrapped in a [*ServerError]
// when the server answers with a non-2xx status.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bill-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// CatalogAdapter reads and extends the server-held catalog.
type CatalogAdapter interface {
	// ListItems fetches the full catalog with GET /items. An empty catalog
	// is returned as an empty slice and no error.
	ListItems(ctx context.Context) ([]models.CatalogItem, error)

	// AddItem creates a catalog entry with POST /items and returns the
	// server's confirmation. A rejection is returned as a [*ServerError]
	// whose Reason holds the body's "error" field, if any.
	AddItem(ctx context.Context, item models.NewItem) (models.AddItemResponse, error)
}

// ExportAdapter turns a bill into a rendered document.
type ExportAdapter interface {
	// GeneratePDF posts lines to POST /generate-pdf and returns the raw
	// document.
	GeneratePDF(ctx context.Context, lines []models.LineItem) (models.Document, error)
}

// ServerAdapter is the full set of server exchanges used by the client.
type ServerAdapter interface {
	CatalogAdapter
	ExportAdapter
}
