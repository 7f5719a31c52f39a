// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-bill-desk/internal/config"
	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/utils"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:5000", want: "http://localhost:5000"},
		{in: " https://bills.example.com/ ", want: "https://bills.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, nil, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

// ── ListItems ────────────────────────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Tea","price":10.0},{"id":2,"name":"Samosa","price":20}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.ListItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Tea", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "2", items[1].ID.String())
}

func TestListItems_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv.URL).ListItems(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListItems_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListItems(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
}

func TestListItems_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListItems(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestListItems_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

// ── AddItem ──────────────────────────────────────────────────────────────────

func TestAddItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"Lassi","price":35.5}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Item added successfully!","id":4}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.AddItem(context.Background(), models.NewItem{
		Name:  "Lassi",
		Price: decimal.RequireFromString("35.5"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Item added successfully!", got.Message)
	require.NotNil(t, got.ID)
	assert.Equal(t, "4", got.ID.String())
}

func TestAddItem_ConflictWithReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "duplicate name"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AddItem(context.Background(), models.NewItem{Name: "Tea"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "duplicate name", serverErr.Reason)
}

func TestAddItem_BadRequestWithoutReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AddItem(context.Background(), models.NewItem{Name: "Tea"})

	var serverErr *ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Empty(t, serverErr.Reason)
	assert.Equal(t, "oops", serverErr.Body)
}

// ── GeneratePDF ──────────────────────────────────────────────────────────────

func TestGeneratePDF_Success(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-pdf", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"name":"Tea","price":10,"quantity":5,"total":50}]`, string(body))

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	lines := []models.LineItem{models.NewLineItem(models.CatalogItem{
		ID:    models.NewItemID("1"),
		Name:  "Tea",
		Price: decimal.NewFromInt(10),
	}, 5)}

	doc, err := newTestAdapter(t, srv.URL).GeneratePDF(context.Background(), lines)

	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, pdf, doc.Body)
}

func TestGeneratePDF_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GeneratePDF(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestServerError_Message(t *testing.T) {
	err := &ServerError{StatusCode: 418, kind: ErrUnexpectedStatus}
	assert.Equal(t, "unexpected status (http 418)", err.Error())

	err.Reason = "teapot"
	assert.Equal(t, "unexpected status (http 418): teapot", err.Error())
}
