package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/models"
)

const billFileName = "bill.pdf"

func (h *Handler) generatePDF(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var lines []models.LineItem
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil {
		log.Err(err).Str("func", "*Handler.generatePDF").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %v", ErrInvalidBill, err))
		return
	}

	doc, err := h.renderer.Render(r.Context(), lines)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generatePDF").Int("lines", len(lines)).Msg("error rendering bill")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(billFileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}
