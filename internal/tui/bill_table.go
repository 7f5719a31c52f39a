package tui

import (
	"strings"

	"github.com/MKhiriev/go-bill-desk/internal/bill"
)

const (
	colName  = 24
	colPrice = 12
	colQty   = 6
	colTotal = 14
)

func renderBillTable(view bill.View) string {
	var b strings.Builder

	b.WriteString(helpStyle.Render(
		"  " + padRight("Item", colName) + " " + padLeft("Price", colPrice) + " " +
			padLeft("Qty", colQty) + " " + padLeft("Total", colTotal)))
	b.WriteString("\n")

	if len(view.Rows) == 0 {
		b.WriteString("  ")
		b.WriteString(placeholderText.Render("empty"))
		b.WriteString("\n")
	}
	for _, row := range view.Rows {
		b.WriteString("  ")
		b.WriteString(padRight(row.Name, colName))
		b.WriteString(" ")
		b.WriteString(padLeft(row.UnitPrice, colPrice))
		b.WriteString(" ")
		b.WriteString(padLeft(row.Quantity, colQty))
		b.WriteString(" ")
		b.WriteString(padLeft(row.LineTotal, colTotal))
		b.WriteString("\n")
	}

	width := colName + colPrice + colQty + colTotal + 3
	b.WriteString("  ")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("\n  ")
	b.WriteString(padRight("Grand total", width-colTotal))
	b.WriteString(titleStyle.Render(padLeft(view.GrandTotal, colTotal)))
	b.WriteString("\n")
	return b.String()
}
