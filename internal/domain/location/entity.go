package location

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PayRateType enum
type PayRateType string

const (
	PayRateTypePerHour PayRateType = "Per Hour"
	PayRateTypePerDay  PayRateType = "Per Day"
)

// ParsePayRateType accepts the display names and their snake/adjective forms.
func ParsePayRateType(s string) (PayRateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per hour", "per_hour", "hourly":
		return PayRateTypePerHour, nil
	case "per day", "per_day", "daily":
		return PayRateTypePerDay, nil
	}
	return "", ErrInvalidPayRateType
}

func (t PayRateType) IsValid() bool {
	return t == PayRateTypePerHour || t == PayRateTypePerDay
}

// PayPolicy governs how a shift at a location is paid.
type PayPolicy struct {
	Rate decimal.Decimal
	Type PayRateType
}

func (p PayPolicy) Validate() error {
	if p.Rate.IsNegative() {
		return ErrNegativePayRate
	}
	if !p.Type.IsValid() {
		return ErrInvalidPayRateType
	}
	return nil
}

// Location - client facility that owns a pay policy
type Location struct {
	ID           string
	FacilityName string
	ContactName  string
	ContactEmail string
	ContactPhone string
	Address      string
	City         string
	State        string
	Zip          string
	PayRate      decimal.Decimal
	PayRateType  PayRateType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (l Location) Policy() PayPolicy {
	return PayPolicy{Rate: l.PayRate, Type: l.PayRateType}
}
