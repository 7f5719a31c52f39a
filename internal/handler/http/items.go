package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/models"
	"github.com/shopspring/decimal"
)

const itemAddedMessage = "Item added successfully!"

type addItemRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

func (req addItemRequest) toNewItem() (models.NewItem, error) {
	if req.Name == nil || req.Price == nil {
		return models.NewItem{}, ErrInvalidItem
	}

	name := strings.TrimSpace(*req.Name)
	if name == "" || req.Price.IsNegative() {
		return models.NewItem{}, ErrInvalidItem
	}
	return models.NewItem{Name: name, Price: *req.Price}, nil
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listItems").Msg("error listing catalog")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addItem").Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: %v", ErrInvalidItem, err))
		return
	}

	item, err := req.toNewItem()
	if err != nil {
		log.Err(err).Str("func", "*Handler.addItem").Msg("invalid item")
		writeError(w, err)
		return
	}

	created, err := h.catalog.AddItem(r.Context(), item)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addItem").Str("name", item.Name).Msg("error adding item")
		writeError(w, err)
		return
	}

	id := created.ID
	writeJSON(w, http.StatusCreated, models.AddItemResponse{Message: itemAddedMessage, ID: &id})
}
