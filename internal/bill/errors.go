package bill

import "errors"

var (
	ErrNoItemSelected  = errors.New("no item selected")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)
