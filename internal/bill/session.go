package bill

import (
	"slices"

	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/shopspring/decimal"
)

// Session is the bill of one client session. The zero value is not usable;
// construct it with [NewSession].
//
// Session is not safe for concurrent use. The terminal UI mutates it only
// from its update loop.
type Session struct {
	lines      []models.LineItem
	grandTotal decimal.Decimal
}

// NewSession returns an empty bill.
func NewSession() *Session {
	return &Session{grandTotal: decimal.Zero}
}

// Add puts quantity units of item on the bill.
//
// A nil item returns [ErrNoItemSelected] and a quantity below 1 returns
// [ErrInvalidQuantity]; in both cases the bill is left untouched. If the
// item's id is already on the bill its quantity grows, otherwise a new line
// is appended.
func (s *Session) Add(item *models.CatalogItem, quantity int) error {
	if item == nil {
		return ErrNoItemSelected
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	idx := slices.IndexFunc(s.lines, func(l models.LineItem) bool {
		return l.ID == item.ID
	})
	if idx >= 0 {
		line := &s.lines[idx]
		line.Quantity += quantity
		line.Recalculate()
	} else {
		s.lines = append(s.lines, models.NewLineItem(*item, quantity))
	}

	s.recalculate()
	return nil
}

// Lines returns a copy of the line items in first-add order.
func (s *Session) Lines() []models.LineItem {
	return slices.Clone(s.lines)
}

// Len returns the number of distinct line items.
func (s *Session) Len() int {
	return len(s.lines)
}

// IsEmpty reports whether the bill has no lines.
func (s *Session) IsEmpty() bool {
	return len(s.lines) == 0
}

// GrandTotal returns the sum of all line totals.
func (s *Session) GrandTotal() decimal.Decimal {
	return s.grandTotal
}

// Reset empties the bill.
func (s *Session) Reset() {
	s.lines = nil
	s.grandTotal = decimal.Zero
}

func (s *Session) recalculate() {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Total)
	}
	s.grandTotal = total
}
