package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bill-desk/internal/bill"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/validators"
	"github.com/MKhiriev/go-bill-desk/models"
)

type billService struct {
	session   *bill.Session
	validator validators.Validator
	logger    *logger.Logger
}

// NewBillService returns a [BillService] operating on session.
func NewBillService(session *bill.Session, validator validators.Validator, logger *logger.Logger) BillService {
	return &billService{session: session, validator: validator, logger: logger}
}

func (b *billService) AddToBill(ctx context.Context, item *models.CatalogItem, input models.QuantityInput) error {
	if item == nil {
		b.logger.Warn().Msg("add to bill without selection")
		return validationError(bill.ErrNoItemSelected)
	}

	if err := b.validator.Validate(ctx, input); err != nil {
		b.logger.Warn().Err(err).Str("quantity", input.Quantity).Msg("quantity rejected")
		return validationError(fmt.Errorf("%w: %w", bill.ErrInvalidQuantity, err))
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(input.Quantity))
	if err != nil {
		return validationError(fmt.Errorf("%w: %v", bill.ErrInvalidQuantity, err))
	}

	if err = b.session.Add(item, quantity); err != nil {
		return validationError(err)
	}

	b.logger.Debug().
		Str("item_id", item.ID.String()).
		Int("quantity", quantity).
		Str("grand_total", b.session.GrandTotal().String()).
		Msg("item added to bill")
	return nil
}

func (b *billService) View() bill.View {
	return b.session.View()
}

func (b *billService) Lines() []models.LineItem {
	return b.session.Lines()
}

func (b *billService) Reset() {
	b.session.Reset()
	b.logger.Debug().Msg("bill reset")
}
