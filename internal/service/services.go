package service

import (
	"github.com/MKhiriev/go-bill-desk/internal/adapter"
	"github.com/MKhiriev/go-bill-desk/internal/bill"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/internal/validators"
)

type ClientServices struct {
	CatalogService CatalogService
	BillService    BillService
	ExportService  ExportService
}

// NewClientServices wires the client services around a fresh bill session.
func NewClientServices(serverAdapter adapter.ServerAdapter, sink store.DocumentSink, log *logger.Logger) *ClientServices {
	validator := validators.NewBillInputValidator()

	return &ClientServices{
		CatalogService: NewCatalogService(serverAdapter, validator, log),
		BillService:    NewBillService(bill.NewSession(), validator, log),
		ExportService:  NewExportService(serverAdapter, sink, log),
	}
}
