package tui

import "github.com/MKhiriev/go-bill-desk/models"

type catalogLoadedMsg struct {
	items []models.CatalogItem
	err   error
}

type itemAddedMsg struct {
	message string
	err     error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
