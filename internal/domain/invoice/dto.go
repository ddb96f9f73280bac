package invoice

import (
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type BuildInvoiceRequest struct {
	LocationID string
	Start      string
	End        string
}

// Period validates the request and returns the parsed bounds.
func (r *BuildInvoiceRequest) Period() (civil.Date, civil.Date, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs.Add("location_id", "is required")
	}
	start, ok := validator.IsValidDate(r.Start)
	if !ok {
		errs.Add("start", "must be MM/DD/YYYY or YYYY-MM-DD")
	}
	end, ok := validator.IsValidDate(r.End)
	if !ok {
		errs.Add("end", "must be MM/DD/YYYY or YYYY-MM-DD")
	}
	if err := errs.Err(); err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	if end.Before(start) {
		return civil.Date{}, civil.Date{}, ErrInvalidPeriod
	}

	return start, end, nil
}

type LineItemResponse struct {
	EntryID   string          `json:"entry_id"`
	Date      string          `json:"date"`
	Arrival   string          `json:"arrival"`
	Departure string          `json:"departure"`
	Hours     decimal.Decimal `json:"hours"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	Anomaly   bool            `json:"anomaly,omitempty"`
}

type InvoiceResponse struct {
	LocationID string                    `json:"location_id"`
	Start      string                    `json:"start"`
	End        string                    `json:"end"`
	IssuedOn   string                    `json:"issued_on"`
	BillTo     location.LocationResponse `json:"bill_to"`
	From       business.ProfileResponse  `json:"from"`
	Items      []LineItemResponse        `json:"items"`
	TotalHours decimal.Decimal           `json:"total_hours"`
	Total      decimal.Decimal           `json:"total"`
	Notes      []string                  `json:"notes"`
}

// NewInvoiceResponse renders dates in the display form and rounds hours and
// money to two places.
func NewInvoiceResponse(inv Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, LineItemResponse{
			EntryID:   item.EntryID,
			Date:      item.Date.String(),
			Arrival:   item.Arrival,
			Departure: item.Departure,
			Hours:     decimal.NewFromFloat(item.Hours).Round(2),
			Rate:      item.Rate.Round(2),
			Amount:    item.Amount.Round(2),
			Anomaly:   item.Anomaly,
		})
	}

	notes := inv.Notes
	if notes == nil {
		notes = []string{}
	}

	return InvoiceResponse{
		LocationID: inv.LocationID,
		Start:      inv.Start.String(),
		End:        inv.End.String(),
		IssuedOn:   inv.IssuedOn.String(),
		BillTo:     location.NewLocationResponse(inv.BillTo),
		From:       business.NewProfileResponse(inv.From),
		Items:      items,
		TotalHours: decimal.NewFromFloat(inv.TotalHours()).Round(2),
		Total:      inv.Total.Round(2),
		Notes:      notes,
	}
}
