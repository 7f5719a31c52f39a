package models

// AddItemResponse is the success body of POST /items.
type AddItemResponse struct {
	// Message is the confirmation text shown to the user.
	Message string `json:"message"`

	// ID is the identifier assigned to the new catalog entry, when the
	// server reports it.
	ID *ItemID `json:"id,omitempty"`
}

// ErrorResponse is the failure body of the catalog endpoints. Error may be
// empty when the server gives no reason.
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

// Document is a rendered bill returned by POST /generate-pdf.
type Document struct {
	// ContentType is the media type reported by the server.
	ContentType string

	// Body holds the raw document bytes.
	Body []byte
}
