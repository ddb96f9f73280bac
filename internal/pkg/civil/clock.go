package civil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMalformedTime = errors.New("malformed time of day")

// Day is the length of a calendar day used for midnight rollover.
const Day = 24 * time.Hour

var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"3:04:05PM",
	"3:04PM",
}

// Clock is a time of day as the offset from midnight.
type Clock time.Duration

// ParseClock accepts 24-hour and 12-hour forms with or without seconds.
func ParseClock(s string) (Clock, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, normalized)
		if err != nil {
			continue
		}
		h, m, sec := t.Clock()
		return Clock(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
}

func (c Clock) Duration() time.Duration {
	return time.Duration(c)
}

func (c Clock) String() string {
	d := time.Duration(c)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}

// Shift is an arrival/departure pair on a single calendar date.
type Shift struct {
	Arrival   Clock
	Departure Clock
}

// ParseShift parses both ends of a shift.
func ParseShift(arrival, departure string) (Shift, error) {
	a, err := ParseClock(arrival)
	if err != nil {
		return Shift{}, fmt.Errorf("arrival: %w", err)
	}
	d, err := ParseClock(departure)
	if err != nil {
		return Shift{}, fmt.Errorf("departure: %w", err)
	}
	return Shift{Arrival: a, Departure: d}, nil
}

// CrossesMidnight reports whether departure falls on the following day.
func (s Shift) CrossesMidnight() bool {
	return s.Departure < s.Arrival
}

// Duration is the elapsed time from arrival to departure.
func (s Shift) Duration() time.Duration {
	departure := s.Departure.Duration()
	if s.CrossesMidnight() {
		departure += Day
	}
	return departure - s.Arrival.Duration()
}

// DepartureDate returns the date the shift ends when it starts on d.
func (s Shift) DepartureDate(d Date) Date {
	if s.CrossesMidnight() {
		return d.AddDays(1)
	}
	return d
}
