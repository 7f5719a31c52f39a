package models

// NewItemInput is the raw new-item form as typed by the user.
type NewItemInput struct {
	Name  string `validate:"notblank"`
	Price string `validate:"positive_decimal"`
}

// QuantityInput is the raw quantity field of the add-to-bill form.
type QuantityInput struct {
	Quantity string `validate:"positive_int"`
}
