package invoice

import (
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/shopspring/decimal"
)

// Invoice is derived from persisted entries and never stored.
type Invoice struct {
	LocationID string
	Start      civil.Date
	End        civil.Date
	IssuedOn   civil.Date
	Items      []LineItem
	Total      decimal.Decimal
	Notes      []string

	// Rendering context
	BillTo location.Location
	From   business.Profile
}

// LineItem is one entry of the invoice.
type LineItem struct {
	EntryID   string
	Date      civil.Date
	Arrival   string
	Departure string
	Hours     float64
	Rate      decimal.Decimal
	Amount    decimal.Decimal

	// Anomaly marks a line whose times could not be parsed; Hours is 0.
	Anomaly bool
}

func (inv Invoice) TotalHours() float64 {
	var total float64
	for _, item := range inv.Items {
		total += item.Hours
	}
	return total
}

// Anomalies returns the lines that need human review.
func (inv Invoice) Anomalies() []LineItem {
	var out []LineItem
	for _, item := range inv.Items {
		if item.Anomaly {
			out = append(out, item)
		}
	}
	return out
}
