package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field names accepted by Validate for partial validation.
const (
	FieldName     = "Name"
	FieldPrice    = "Price"
	FieldQuantity = "Quantity"
)

type BillInputValidator struct {
	validate *validator.Validate
}

// NewBillInputValidator returns a [Validator] for [models.NewItemInput] and
// [models.QuantityInput].
//
// Custom tags:
//   - notblank: non-empty after trimming spaces;
//   - positive_decimal: a decimal number greater than zero;
//   - positive_int: a base-10 integer greater than zero.
func NewBillInputValidator() Validator {
	v := validator.New()
	mustRegister(v, "notblank", isNotBlank)
	mustRegister(v, "positive_decimal", isPositiveDecimal)
	mustRegister(v, "positive_int", isPositiveInt)

	return &BillInputValidator{validate: v}
}

func (v *BillInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewItemInput:
		return v.check(ctx, &value, ErrInvalidNewItem, fields...)
	case *models.NewItemInput:
		return v.check(ctx, value, ErrInvalidNewItem, fields...)

	case models.QuantityInput:
		return v.check(ctx, &value, ErrInvalidQuantity, fields...)
	case *models.QuantityInput:
		return v.check(ctx, value, ErrInvalidQuantity, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BillInputValidator) check(ctx context.Context, obj any, kind error, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", kind, err)
	}

	return nil
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isPositiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil && d.IsPositive()
}

func isPositiveInt(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil && n > 0
}
