package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/render"
)

const messageNoEntries = "No time entries found for this location in the selected date range."

type InvoiceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

// build writes the error response itself and reports whether to continue.
func (h *invoiceHandlerImpl) build(w http.ResponseWriter, r *http.Request) (invoice.Invoice, bool) {
	q := r.URL.Query()
	req := invoice.BuildInvoiceRequest{
		LocationID: q.Get("location_id"),
		Start:      q.Get("start"),
		End:        q.Get("end"),
	}

	inv, ok, err := h.invoiceService.Build(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return invoice.Invoice{}, false
	}
	if !ok {
		response.NotFound(w, messageNoEntries)
		return invoice.Invoice{}, false
	}
	return inv, true
}

func (h *invoiceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.build(w, r)
	if !ok {
		return
	}

	response.Success(w, invoice.NewInvoiceResponse(inv))
}

func (h *invoiceHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.build(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(render.Text(inv)))
}

func (h *invoiceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.build(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteXLSX(&buf, inv); err != nil {
		slog.Error("failed to render invoice workbook", "location_id", inv.LocationID, "error", err)
		response.InternalServerError(w, "Failed to render invoice")
		return
	}

	w.Header().Set("Content-Type", render.XLSXContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.FileName(inv)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
