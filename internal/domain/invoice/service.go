package invoice

import "context"

type InvoiceService interface {
	// Build returns ok=false with a nil error when no entry matches the
	// location and period.
	Build(ctx context.Context, req BuildInvoiceRequest) (inv Invoice, ok bool, err error)
}
