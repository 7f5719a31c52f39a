package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// ContentTypePDF is the media type of rendered bills.
const ContentTypePDF = "application/pdf"

const (
	qrImageName = "bill-qr"
	qrPixels    = 256
	qrWidthMM   = 40.0

	rowHeight = 10.0
	colItem   = 70.0
	colPrice  = 40.0
	colQty    = 30.0
	colTotal  = 50.0
)

type pdfRenderer struct {
	logger *logger.Logger
}

// NewPDFRenderer returns a [BillRenderer] producing a one-page A4 bill: a
// table of lines with the grand total and a QR code of the bill as JSON.
func NewPDFRenderer(logger *logger.Logger) BillRenderer {
	return &pdfRenderer{logger: logger}
}

func (p *pdfRenderer) Render(ctx context.Context, lines []models.LineItem) (models.Document, error) {
	if len(lines) == 0 {
		return models.Document{}, ErrNoLines
	}
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	qr, err := billQRCode(lines)
	if err != nil {
		return models.Document{}, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 16)
	pdf.CellFormat(0, rowHeight, "Bill", "", 1, "C", false, 0, "")
	pdf.Ln(rowHeight)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(colItem, rowHeight, "Item", "1", 0, "", false, 0, "")
	pdf.CellFormat(colPrice, rowHeight, "Price", "1", 0, "", false, 0, "")
	pdf.CellFormat(colQty, rowHeight, "Qty", "1", 0, "", false, 0, "")
	pdf.CellFormat(colTotal, rowHeight, "Total", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	grandTotal := decimal.Zero
	for _, line := range lines {
		line.Recalculate()
		grandTotal = grandTotal.Add(line.Total)

		pdf.CellFormat(colItem, rowHeight, tr(line.Name), "1", 0, "", false, 0, "")
		pdf.CellFormat(colPrice, rowHeight, line.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colQty, rowHeight, fmt.Sprint(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, rowHeight, line.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(colItem+colPrice+colQty, rowHeight, "Grand Total:", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, rowHeight, grandTotal.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.Ln(rowHeight)

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(qr))
	pdf.ImageOptions(qrImageName, 80, pdf.GetY(), qrWidthMM, 0, false, opts, 0, "")

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrWritingPDF, err)
	}

	p.logger.Debug().
		Int("lines", len(lines)).
		Str("grand_total", grandTotal.StringFixed(2)).
		Int("bytes", buf.Len()).
		Msg("bill rendered")

	return models.Document{ContentType: ContentTypePDF, Body: buf.Bytes()}, nil
}

func billQRCode(lines []models.LineItem) ([]byte, error) {
	payload, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingQR, err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Low, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingQR, err)
	}
	return png, nil
}
