// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns a bill into a printable document for the development
// server.
package render

import (
	"context"

	"github.com/MKhiriev/go-bill-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/render_mock.go -package=mock

// BillRenderer renders bill lines into a document.
type BillRenderer interface {
	Render(ctx context.Context, lines []models.LineItem) (models.Document, error)
}
