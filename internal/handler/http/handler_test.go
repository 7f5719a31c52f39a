package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/internal/mock"
	"github.com/MKhiriev/go-bill-desk/internal/render"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/internal/utils"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func seedCatalog() store.CatalogRepository {
	return store.NewMemoryCatalog(logger.Nop(),
		models.NewItem{Name: "Aloo Paratha", Price: decimal.NewFromInt(50)},
		models.NewItem{Name: "Samosa", Price: decimal.NewFromInt(20)},
	)
}

func newTestRouter(t *testing.T, renderer render.BillRenderer) http.Handler {
	t.Helper()
	if renderer == nil {
		renderer = mock.NewMockBillRenderer(gomock.NewController(t))
	}
	return NewHandler(seedCatalog(), renderer, fixedIDs("generated-id"), logger.Nop()).Init()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Error
}

func TestListItems(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := do(t, router, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":1,"name":"Aloo Paratha","price":50},{"id":2,"name":"Samosa","price":20}]`, rr.Body.String())
}

func TestListItems_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := NewHandler(store.NewMemoryCatalog(logger.Nop()), mock.NewMockBillRenderer(ctrl), fixedIDs("x"), logger.Nop()).Init()

	rr := do(t, router, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListItems_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mock.NewMockCatalogRepository(ctrl)
	catalog.EXPECT().ListItems(gomock.Any()).Return(nil, errors.New("disk on fire"))
	router := NewHandler(catalog, mock.NewMockBillRenderer(ctrl), fixedIDs("x"), logger.Nop()).Init()

	rr := do(t, router, http.MethodGet, "/items", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rr))
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
		wantID     string
	}{
		{name: "created", body: `{"name":"Chai","price":10.5}`, wantStatus: http.StatusCreated, wantID: "3"},
		{name: "duplicate", body: `{"name":"Samosa","price":25}`, wantStatus: http.StatusConflict, wantError: "Item with this name already exists!"},
		{name: "missing price", body: `{"name":"Chai"}`, wantStatus: http.StatusBadRequest, wantError: "Invalid data provided"},
		{name: "missing name", body: `{"price":3}`, wantStatus: http.StatusBadRequest, wantError: "Invalid data provided"},
		{name: "blank name", body: `{"name":"  ","price":3}`, wantStatus: http.StatusBadRequest, wantError: "Invalid data provided"},
		{name: "negative price", body: `{"name":"Chai","price":-1}`, wantStatus: http.StatusBadRequest, wantError: "Invalid data provided"},
		{name: "broken json", body: `{"name":`, wantStatus: http.StatusBadRequest, wantError: "Invalid data provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, nil)

			rr := do(t, router, http.MethodPost, "/items", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rr))
				return
			}

			var resp models.AddItemResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, itemAddedMessage, resp.Message)
			require.NotNil(t, resp.ID)
			assert.Equal(t, tt.wantID, resp.ID.String())

			list := do(t, router, http.MethodGet, "/items", "")
			assert.Contains(t, list.Body.String(), `"Chai"`)
		})
	}
}

func TestGeneratePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mock.NewMockBillRenderer(ctrl)
	router := newTestRouter(t, renderer)

	renderer.EXPECT().
		Render(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, lines []models.LineItem) (models.Document, error) {
			require.Len(t, lines, 1)
			assert.Equal(t, "Tea", lines[0].Name)
			assert.Equal(t, 5, lines[0].Quantity)
			return models.Document{ContentType: render.ContentTypePDF, Body: []byte("%PDF-1.3 test")}, nil
		})

	rr := do(t, router, http.MethodPost, "/generate-pdf",
		`[{"id":1,"name":"Tea","price":10,"quantity":5,"total":50}]`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, render.ContentTypePDF, rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="bill.pdf"`, rr.Header().Get("Content-Disposition"))
	assert.True(t, bytes.Equal([]byte("%PDF-1.3 test"), rr.Body.Bytes()))
}

func TestGeneratePDF_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		renderErr  error
		wantStatus int
		wantError  string
	}{
		{name: "not an array", body: `{"id":1}`, wantStatus: http.StatusBadRequest, wantError: "Invalid bill provided"},
		{name: "empty bill", body: `[]`, renderErr: render.ErrNoLines, wantStatus: http.StatusBadRequest, wantError: "Bill is empty"},
		{name: "renderer failure", body: `[{"id":1,"name":"Tea","price":10,"quantity":1,"total":10}]`, renderErr: render.ErrWritingPDF, wantStatus: http.StatusInternalServerError, wantError: "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			renderer := mock.NewMockBillRenderer(ctrl)
			if tt.renderErr != nil {
				renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(models.Document{}, tt.renderErr)
			}
			router := newTestRouter(t, renderer)

			rr := do(t, router, http.MethodPost, "/generate-pdf", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rr))
		})
	}
}

func TestRoutes_UnknownAndWrongMethod(t *testing.T) {
	router := newTestRouter(t, nil)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/nope", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, router, http.MethodGet, "/generate-pdf", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, router, http.MethodDelete, "/items", "").Code)
}

func TestWithRequestID(t *testing.T) {
	h := NewHandler(seedCatalog(), nil, fixedIDs("generated-id"), logger.Nop())

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "caller id reused", header: "caller-id", want: "caller-id"},
		{name: "id generated", header: "", want: "generated-id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.NotNil(t, logger.FromContext(r.Context()))
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			if tt.header != "" {
				req.Header.Set(utils.RequestIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			h.withRequestID(next).ServeHTTP(rr, req)

			assert.True(t, nextCalled)
			assert.Equal(t, tt.want, rr.Header().Get(utils.RequestIDHeader))
		})
	}
}

func TestWithLogging_RecordsStatusAndSize(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(seedCatalog(), nil, fixedIDs("id"), logger.NewLogger("test", &buf))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rr := httptest.NewRecorder()
	h.withRequestID(h.withLogging(next)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)

	var entry map[string]any
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(5), entry["size"])
	assert.Equal(t, "id", entry["request_id"])
	assert.Equal(t, "/items", entry["uri"])
}
