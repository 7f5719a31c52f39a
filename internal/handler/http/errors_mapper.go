package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bill-desk/internal/render"
	"github.com/MKhiriev/go-bill-desk/internal/store"
	"github.com/MKhiriev/go-bill-desk/models"
)

type errorReply struct {
	status  int
	message string
}

var errorReplies = map[error]errorReply{
	ErrInvalidItem:             {http.StatusBadRequest, "Invalid data provided"},
	ErrInvalidBill:             {http.StatusBadRequest, "Invalid bill provided"},
	render.ErrNoLines:          {http.StatusBadRequest, "Bill is empty"},
	store.ErrItemAlreadyExists: {http.StatusConflict, "Item with this name already exists!"},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorReplies {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
}

// writeError answers with the {"error": ...} body the client reads its
// notices from.
func writeError(w http.ResponseWriter, err error) {
	reply := replyFromError(err)
	writeJSON(w, reply.status, models.ErrorResponse{Error: reply.message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
