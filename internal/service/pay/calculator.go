// Package pay turns a shift window and a location pay policy into hours
// worked and pay owed. Nothing here rounds; callers round with RoundCurrency
// when they store or display an amount.
package pay

import (
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/shopspring/decimal"
)

// StandardDayHours is the length of a full day for per-day rates.
const StandardDayHours = 8

var standardDay = decimal.NewFromInt(StandardDayHours)

// ParseShift parses arrival and departure. Use it to tell a malformed input
// apart from a genuine zero-length shift.
func ParseShift(arrival, departure string) (civil.Shift, error) {
	return civil.ParseShift(arrival, departure)
}

// HoursWorked returns the elapsed hours from arrival to departure, rolling
// over midnight when departure is earlier than arrival. Unparsable input
// yields 0.
func HoursWorked(arrival, departure string) float64 {
	shift, err := civil.ParseShift(arrival, departure)
	if err != nil {
		return 0
	}
	return shift.Duration().Hours()
}

// DailyPay computes the unrounded pay for a shift under policy.
//
// Per day: the full rate for StandardDayHours or more, prorated linearly
// below that. Per hour: rate times hours.
func DailyPay(policy location.PayPolicy, arrival, departure string) decimal.Decimal {
	return PayForHours(policy, HoursWorked(arrival, departure))
}

// PayForHours applies policy to an already computed number of hours.
func PayForHours(policy location.PayPolicy, hours float64) decimal.Decimal {
	h := decimal.NewFromFloat(hours)

	if policy.Type == location.PayRateTypePerDay {
		if h.GreaterThanOrEqual(standardDay) {
			return policy.Rate
		}
		return policy.Rate.Mul(h).Div(standardDay)
	}
	return policy.Rate.Mul(h)
}

// DisplayRate is the rate printed on an invoice line: the raw hourly rate,
// or the hourly equivalent of a day rate.
func DisplayRate(policy location.PayPolicy) decimal.Decimal {
	if policy.Type == location.PayRateTypePerDay {
		return policy.Rate.Div(standardDay)
	}
	return policy.Rate
}

// RoundCurrency rounds to cents, half away from zero.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
