package pay

import (
	"testing"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perHour(rate int64) location.PayPolicy {
	return location.PayPolicy{Rate: decimal.NewFromInt(rate), Type: location.PayRateTypePerHour}
}

func perDay(rate int64) location.PayPolicy {
	return location.PayPolicy{Rate: decimal.NewFromInt(rate), Type: location.PayRateTypePerDay}
}

func TestHoursWorked(t *testing.T) {
	cases := []struct {
		name      string
		arrival   string
		departure string
		want      float64
	}{
		{"day shift", "08:00:00", "17:00:00", 9.0},
		{"overnight", "22:00:00", "06:00:00", 8.0},
		{"twelve hour clock", "07:00 AM", "05:00 PM", 10.0},
		{"half hour", "09:00", "13:30", 4.5},
		{"same time", "08:00", "08:00", 0.0},
		{"one minute before midnight rollover", "23:59", "00:01", 2.0 / 60.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, HoursWorked(c.arrival, c.departure), 1e-9)
		})
	}
}

func TestHoursWorked_MalformedInputYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, HoursWorked("", "17:00"))
	assert.Equal(t, 0.0, HoursWorked("08:00", "quitting time"))

	_, err := ParseShift("08:00", "quitting time")
	assert.Error(t, err)
}

func TestDailyPay_PerHour(t *testing.T) {
	got := DailyPay(perHour(20), "08:00:00", "16:00:00")
	assert.True(t, decimal.NewFromInt(160).Equal(got), "got %s", got)
}

func TestDailyPay_PerDayProrated(t *testing.T) {
	got := DailyPay(perDay(160), "08:00:00", "12:00:00")
	assert.True(t, decimal.NewFromInt(80).Equal(got), "got %s", got)
}

func TestDailyPay_PerDayCapped(t *testing.T) {
	for _, departure := range []string{"16:00:00", "18:30:00", "23:00:00"} {
		got := DailyPay(perDay(160), "08:00:00", departure)
		assert.True(t, decimal.NewFromInt(160).Equal(got), "departure %s got %s", departure, got)
	}
}

func TestDailyPay_OvernightPerHour(t *testing.T) {
	got := DailyPay(perHour(25), "22:00", "06:00")
	assert.True(t, decimal.NewFromInt(200).Equal(got), "got %s", got)
}

func TestDailyPay_MalformedTimesPayNothing(t *testing.T) {
	assert.True(t, DailyPay(perHour(20), "??", "16:00").IsZero())
	assert.True(t, DailyPay(perDay(160), "08:00", "").IsZero())
}

func TestDailyPay_UnroundedUntilBoundary(t *testing.T) {
	// 7h20m at 20/h is 146.666...
	raw := DailyPay(perHour(20), "08:00", "15:20")
	require.True(t, raw.GreaterThan(decimal.RequireFromString("146.66")))
	require.True(t, raw.LessThan(decimal.RequireFromString("146.67")))

	assert.Equal(t, "146.67", RoundCurrency(raw).StringFixed(2))
}

func TestDisplayRate(t *testing.T) {
	assert.True(t, decimal.NewFromInt(20).Equal(DisplayRate(perHour(20))))
	assert.True(t, decimal.NewFromInt(20).Equal(DisplayRate(perDay(160))))
	assert.Equal(t, "18.75", RoundCurrency(DisplayRate(perDay(150))).StringFixed(2))
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, "0.13", RoundCurrency(decimal.RequireFromString("0.125")).StringFixed(2))
	assert.Equal(t, "-0.13", RoundCurrency(decimal.RequireFromString("-0.125")).StringFixed(2))
	assert.Equal(t, "80.00", RoundCurrency(decimal.NewFromInt(80)).StringFixed(2))
}
