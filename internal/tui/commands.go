package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

func (m deskModel) cmdLoadCatalog() tea.Cmd {
	ctx, catalogService := m.ctx, m.services.CatalogService
	return func() tea.Msg {
		items, err := catalogService.ListItems(ctx)
		return catalogLoadedMsg{items: items, err: err}
	}
}

func (m deskModel) cmdAddItem(input models.NewItemInput) tea.Cmd {
	ctx, catalogService := m.ctx, m.services.CatalogService
	return func() tea.Msg {
		message, err := catalogService.AddItem(ctx, input)
		return itemAddedMsg{message: message, err: err}
	}
}

func (m deskModel) cmdExport(lines []models.LineItem) tea.Cmd {
	ctx, exportService := m.ctx, m.services.ExportService
	return func() tea.Msg {
		path, err := exportService.ExportBill(ctx, lines)
		return exportDoneMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
