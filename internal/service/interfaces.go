// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-bill-desk/internal/bill"
	"github.com/MKhiriev/go-bill-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CatalogService reads the server catalog and registers new entries.
type CatalogService interface {
	// ListItems returns the current catalog. Any failure is wrapped in
	// [ErrCatalogFetch]; an empty catalog is not an error.
	ListItems(ctx context.Context) ([]models.CatalogItem, error)

	// AddItem validates the raw form input and creates a catalog entry.
	// It returns the server's confirmation message. Invalid input is
	// reported as [ErrValidation]; every other failure as a
	// [*CatalogAddError] carrying the notice to show.
	AddItem(ctx context.Context, input models.NewItemInput) (string, error)
}

// BillService is the command surface of the session bill.
type BillService interface {
	// AddToBill validates the raw quantity and puts the item on the bill.
	// A missing item or an invalid quantity is reported as [ErrValidation]
	// and leaves the bill untouched.
	AddToBill(ctx context.Context, item *models.CatalogItem, input models.QuantityInput) error

	// View returns the display projection of the bill.
	View() bill.View

	// Lines returns a copy of the bill lines in first-add order.
	Lines() []models.LineItem

	// Reset empties the bill.
	Reset()
}

// ExportService renders a bill into a document and saves it.
type ExportService interface {
	// ExportBill sends lines to the renderer and saves the result, returning
	// the saved path. An empty bill is reported as [ErrValidation] without
	// any network call; every other failure is wrapped in [ErrExportFailed].
	ExportBill(ctx context.Context, lines []models.LineItem) (string, error)
}
