package service

import (
	"errors"

	"github.com/MKhiriev/go-bill-desk/internal/adapter"
	"github.com/MKhiriev/go-bill-desk/internal/app"
	"github.com/MKhiriev/go-bill-desk/internal/bill"
	"github.com/MKhiriev/go-bill-desk/internal/validators"
)

// ResultKind classifies the outcome of a user command.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultValidation
	ResultServer
	ResultNetwork
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultValidation:
		return "validation"
	case ResultServer:
		return "server"
	case ResultNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Result is what the UI shows after a command: a kind and one message.
type Result struct {
	Kind    ResultKind
	Message string
	Err     error
}

func (r Result) OK() bool {
	return r.Kind == ResultSuccess
}

// NewResult classifies err into a Result. A nil err yields a success
// carrying okMsg.
func NewResult(err error, okMsg string) Result {
	if err == nil {
		return Result{Kind: ResultSuccess, Message: okMsg}
	}

	if errors.Is(err, ErrValidation) {
		return Result{Kind: ResultValidation, Message: validationMessage(err), Err: err}
	}

	kind := ResultServer
	if errors.Is(err, adapter.ErrTransport) || errors.Is(err, adapter.ErrMalformedResponse) {
		kind = ResultNetwork
	}

	var addErr *CatalogAddError
	switch {
	case errors.As(err, &addErr):
		return Result{Kind: kind, Message: addErr.Reason, Err: err}
	case errors.Is(err, ErrCatalogFetch):
		return Result{Kind: kind, Message: app.MsgCatalogFetchFailed, Err: err}
	case errors.Is(err, ErrExportFailed):
		if kind == ResultNetwork {
			return Result{Kind: kind, Message: app.MsgExportTransport, Err: err}
		}
		return Result{Kind: kind, Message: app.MsgExportFailed, Err: err}
	default:
		return Result{Kind: kind, Message: app.MsgUnexpected, Err: err}
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, bill.ErrNoItemSelected):
		return app.MsgSelectItem
	case errors.Is(err, bill.ErrInvalidQuantity), errors.Is(err, validators.ErrInvalidQuantity):
		return app.MsgInvalidQuantity
	case errors.Is(err, validators.ErrInvalidNewItem):
		return app.MsgInvalidNewItem
	case errors.Is(err, ErrEmptyBill):
		return app.MsgEmptyBill
	default:
		return app.MsgUnexpected
	}
}
