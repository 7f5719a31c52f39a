// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-bill-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentSink hands a rendered bill to the user. Save returns the location
// the document ended up at.
type DocumentSink interface {
	Save(ctx context.Context, doc models.Document) (string, error)
}

// CatalogRepository holds the catalog served by the development server.
type CatalogRepository interface {
	// ListItems returns every item in insertion order.
	ListItems(ctx context.Context) ([]models.CatalogItem, error)

	// AddItem stores a new item and returns it with its assigned id.
	// Names are unique; a second item with the same name returns
	// [ErrItemAlreadyExists].
	AddItem(ctx context.Context, item models.NewItem) (models.CatalogItem, error)
}
