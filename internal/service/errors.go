package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks local input failures. It is always joined with
	// the specific cause.
	ErrValidation = errors.New("validation failed")

	ErrEmptyBill    = errors.New("bill is empty")
	ErrCatalogFetch = errors.New("catalog fetch failed")
	ErrExportFailed = errors.New("bill export failed")
)

// CatalogAddError is a failed add-item call. Reason is the notice shown to
// the user: the server's own reason when it gave one, a fallback otherwise.
type CatalogAddError struct {
	Reason string
	Err    error
}

func (e *CatalogAddError) Error() string {
	return fmt.Sprintf("add catalog item: %s: %v", e.Reason, e.Err)
}

func (e *CatalogAddError) Unwrap() error {
	return e.Err
}

func validationError(cause error) error {
	return fmt.Errorf("%w: %w", ErrValidation, cause)
}
