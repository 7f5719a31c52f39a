package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidNewItem  = errors.New("invalid new item")
	ErrInvalidQuantity = errors.New("invalid quantity")
)
