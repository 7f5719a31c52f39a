package store

import "errors"

var (
	// ErrEmptyDocument is returned when a document without a body is saved.
	ErrEmptyDocument = errors.New("document body is empty")

	ErrCreatingTempFile = errors.New("failed to create temporary file")
	ErrWritingDocument  = errors.New("failed to write document")
	ErrPublishingFile   = errors.New("failed to move document into place")
)

// ErrItemAlreadyExists is returned when a catalog item with the same name is
// already stored.
var ErrItemAlreadyExists = errors.New("item with this name already exists")
