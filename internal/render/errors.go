package render

import "errors"

var (
	ErrNoLines    = errors.New("bill has no lines")
	ErrEncodingQR = errors.New("failed to encode bill qr code")
	ErrWritingPDF = errors.New("failed to write pdf")
)
