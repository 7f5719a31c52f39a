package models

import "github.com/shopspring/decimal"

// LineItem is one row of a bill: a catalog item plus the accumulated quantity
// and the derived line total.
//
// Total is always Price * Quantity. It is recomputed from those two fields on
// every change and never summed incrementally.
type LineItem struct {
	CatalogItem

	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// NewLineItem builds a LineItem for item with the given quantity.
func NewLineItem(item CatalogItem, quantity int) LineItem {
	line := LineItem{CatalogItem: item, Quantity: quantity}
	line.Recalculate()
	return line
}

// Recalculate sets Total to Price * Quantity.
func (l *LineItem) Recalculate() {
	l.Total = l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
