package http_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-bill-desk/internal/adapter"
	"github.com/MKhiriev/go-bill-desk/internal/app"
	"github.com/MKhiriev/go-bill-desk/internal/config"
	stubhttp "github.com/MKhiriev/go-bill-desk/internal/handler/http"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/render"
	"github.com/MKhiriev/go-bill-desk/internal/service"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/internal/utils"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientAgainstDevServer drives the client services over real HTTP
// against the development server.
func TestClientAgainstDevServer(t *testing.T) {
	log := logger.Nop()
	ids := utils.NewUUIDGenerator()

	catalog := store.NewMemoryCatalog(log, models.NewItem{Name: "Samosa", Price: decimal.NewFromInt(20)})
	srv := httptest.NewServer(stubhttp.NewHandler(catalog, render.NewPDFRenderer(log), ids, log).Init())
	defer srv.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, ids, log)
	require.NoError(t, err)

	downloadDir := t.TempDir()
	sink, err := store.NewFileDocumentSink(config.ClientExport{DownloadDir: downloadDir, FileName: "bill.pdf"}, log)
	require.NoError(t, err)

	services := service.NewClientServices(serverAdapter, sink, log)
	ctx := context.Background()

	msg, err := services.CatalogService.AddItem(ctx, models.NewItemInput{Name: "Tea", Price: "10"})
	require.NoError(t, err)
	assert.Equal(t, "Item added successfully!", msg)

	_, err = services.CatalogService.AddItem(ctx, models.NewItemInput{Name: "Tea", Price: "12"})
	var addErr *service.CatalogAddError
	require.True(t, errors.As(err, &addErr))
	assert.Equal(t, "Item with this name already exists!", addErr.Reason)

	items, err := services.CatalogService.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	tea := items[1]
	assert.Equal(t, "Tea", tea.Name)

	_, err = services.ExportService.ExportBill(ctx, services.BillService.Lines())
	assert.Equal(t, app.MsgEmptyBill, service.NewResult(err, "").Message)

	require.NoError(t, services.BillService.AddToBill(ctx, &tea, models.QuantityInput{Quantity: "3"}))
	require.NoError(t, services.BillService.AddToBill(ctx, &tea, models.QuantityInput{Quantity: "2"}))
	assert.Equal(t, "₹50.00", services.BillService.View().GrandTotal)

	path, err := services.ExportService.ExportBill(ctx, services.BillService.Lines())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(downloadDir, "bill.pdf"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(body[:5]))
	assert.Len(t, services.BillService.Lines(), 1, "export keeps the bill")
}
