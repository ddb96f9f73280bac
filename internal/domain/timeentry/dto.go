package timeentry

import (
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTimeEntryRequest struct {
	LocationID string `json:"location_id"`
	Date       string `json:"date"`
	Arrival    string `json:"arrival"`
	Departure  string `json:"departure"`
	Notes      string `json:"notes"`
}

// Validate checks the request and returns the parsed date.
func (r *CreateTimeEntryRequest) Validate() (civil.Date, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LocationID) {
		errs.Add("location_id", "is required")
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs.Add("date", "must be MM/DD/YYYY or YYYY-MM-DD")
	}
	if !validator.IsValidClock(r.Arrival) {
		errs.Add("arrival", "must be a time of day such as 08:00 or 8:00 AM")
	}
	if !validator.IsValidClock(r.Departure) {
		errs.Add("departure", "must be a time of day such as 17:00 or 5:00 PM")
	}

	return date, errs.Err()
}

type UpdateTimeEntryRequest struct {
	ID string `json:"-"`
	CreateTimeEntryRequest
}

type ListTimeEntryRequest struct {
	LocationID string `json:"location_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Locked     *bool  `json:"locked,omitempty"`
	Archived   *bool  `json:"archived,omitempty"`
}

// ToFilter validates the request and converts it to a repository filter.
func (r *ListTimeEntryRequest) ToFilter() (Filter, error) {
	var errs validator.ValidationErrors
	filter := Filter{Locked: r.Locked, Archived: r.Archived}

	if !validator.IsEmpty(r.LocationID) {
		id := r.LocationID
		filter.LocationID = &id
	}
	if !validator.IsEmpty(r.From) {
		if d, ok := validator.IsValidDate(r.From); ok {
			filter.From = &d
		} else {
			errs.Add("from", "must be MM/DD/YYYY or YYYY-MM-DD")
		}
	}
	if !validator.IsEmpty(r.To) {
		if d, ok := validator.IsValidDate(r.To); ok {
			filter.To = &d
		} else {
			errs.Add("to", "must be MM/DD/YYYY or YYYY-MM-DD")
		}
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		errs.Add("to", "must not be before from")
	}

	return filter, errs.Err()
}

type TimeEntryResponse struct {
	ID           string          `json:"id"`
	LocationID   string          `json:"location_id"`
	LocationName *string         `json:"location_name,omitempty"`
	Date         civil.Date      `json:"date"`
	Arrival      string          `json:"arrival"`
	Departure    string          `json:"departure"`
	Hours        float64         `json:"hours"`
	DailyPay     decimal.Decimal `json:"daily_pay"`
	Notes        string          `json:"notes,omitempty"`
	Locked       bool            `json:"locked"`
	Archived     bool            `json:"archived"`
	State        string          `json:"state"`
}

type StatusResponse struct {
	ID       string `json:"id"`
	Locked   bool   `json:"locked"`
	Archived bool   `json:"archived"`
	State    string `json:"state"`
}

type StatsResponse struct {
	Counts
	TotalHours float64         `json:"total_hours"`
	TotalPay   decimal.Decimal `json:"total_pay"`
}
