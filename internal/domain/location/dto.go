package location

import (
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLocationRequest struct {
	FacilityName string          `json:"facility_name"`
	ContactName  string          `json:"contact_name"`
	ContactEmail string          `json:"contact_email"`
	ContactPhone string          `json:"contact_phone"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Zip          string          `json:"zip"`
	PayRate      decimal.Decimal `json:"pay_rate"`
	PayRateType  string          `json:"pay_rate_type"`
}

func (r *CreateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FacilityName) {
		errs.Add("facility_name", "is required")
	}
	if validator.IsEmpty(r.ContactName) {
		errs.Add("contact_name", "is required")
	}
	if !validator.IsEmpty(r.ContactEmail) && !validator.IsValidEmail(r.ContactEmail) {
		errs.Add("contact_email", "must be a valid email address")
	}
	if !validator.IsNonNegative(r.PayRate) {
		errs.Add("pay_rate", "must be non-negative")
	}
	if _, err := ParsePayRateType(r.PayRateType); err != nil {
		errs.Add("pay_rate_type", "must be 'Per Hour' or 'Per Day'")
	}

	return errs.Err()
}

// UpdateLocationRequest replaces every field of the location
type UpdateLocationRequest struct {
	ID string `json:"-"`
	CreateLocationRequest
}

func (r *UpdateLocationRequest) Validate() error {
	return r.CreateLocationRequest.Validate()
}

type LocationResponse struct {
	ID           string          `json:"id"`
	FacilityName string          `json:"facility_name"`
	ContactName  string          `json:"contact_name"`
	ContactEmail string          `json:"contact_email,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	Address      string          `json:"address,omitempty"`
	City         string          `json:"city,omitempty"`
	State        string          `json:"state,omitempty"`
	Zip          string          `json:"zip,omitempty"`
	PayRate      decimal.Decimal `json:"pay_rate"`
	PayRateType  string          `json:"pay_rate_type"`
}

func NewLocationResponse(l Location) LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		FacilityName: l.FacilityName,
		ContactName:  l.ContactName,
		ContactEmail: l.ContactEmail,
		ContactPhone: l.ContactPhone,
		Address:      l.Address,
		City:         l.City,
		State:        l.State,
		Zip:          l.Zip,
		PayRate:      l.PayRate,
		PayRateType:  string(l.PayRateType),
	}
}
