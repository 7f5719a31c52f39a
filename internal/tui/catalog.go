package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bill-desk/internal/app"
	"github.com/MKhiriev/go-bill-desk/internal/bill"
	"github.com/MKhiriev/go-bill-desk/models"
)

// catalogModel is the item picker. An empty catalog renders a single
// placeholder entry that can never be selected.
type catalogModel struct {
	items   []models.CatalogItem
	idx     int
	loading bool
}

func newCatalogModel() catalogModel {
	return catalogModel{loading: true}
}

// selected returns the highlighted item, or nil when nothing is selectable.
func (m catalogModel) selected() *models.CatalogItem {
	if m.idx < 0 || m.idx >= len(m.items) {
		return nil
	}
	item := m.items[m.idx]
	return &item
}

// setItems replaces the list and keeps the cursor on the same id if it is
// still present.
func (m catalogModel) setItems(items []models.CatalogItem) catalogModel {
	current := m.selected()

	m.items = items
	m.idx = 0
	if current == nil {
		return m
	}
	for i, item := range items {
		if item.ID == current.ID {
			m.idx = i
			break
		}
	}
	return m
}

func (m catalogModel) moveUp() catalogModel {
	if m.idx > 0 {
		m.idx--
	}
	return m
}

func (m catalogModel) moveDown() catalogModel {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
	return m
}

func (m catalogModel) View(focused bool) string {
	var b strings.Builder

	if m.loading && len(m.items) == 0 {
		b.WriteString("    Loading...\n")
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString("    ")
		b.WriteString(placeholderText.Render(app.MsgNoItemsAvailable))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range m.items {
		cursor := "    "
		if i == m.idx {
			cursor = "  • "
			if focused {
				cursor = "  > "
			}
		}
		line := fmt.Sprintf("%s%s %s", cursor, padRight(item.Name, 30), padLeft(bill.FormatMoney(item.Price), 12))
		if i == m.idx && focused {
			line = focusedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
