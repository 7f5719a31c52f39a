package models

import "github.com/shopspring/decimal"

// CatalogItem is a purchasable entry held by the server. The client only
// reads it.
type CatalogItem struct {
	// ID uniquely identifies the entry within the catalog.
	ID ItemID `json:"id"`

	// Name is the display string.
	Name string `json:"name"`

	// Price is the non-negative unit price in the fixed bill currency.
	Price decimal.Decimal `json:"price"`
}

// NewItem is the body of POST /items.
type NewItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
