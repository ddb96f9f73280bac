package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/service/pay"
	"github.com/shopspring/decimal"
)

type InvoiceServiceImpl struct {
	locationRepo  location.LocationRepository
	timeEntryRepo timeentry.TimeEntryRepository
	profileRepo   business.ProfileRepository

	// today is swapped in tests
	today func() civil.Date
}

func NewInvoiceService(
	locationRepo location.LocationRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
	profileRepo business.ProfileRepository,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		locationRepo:  locationRepo,
		timeEntryRepo: timeEntryRepo,
		profileRepo:   profileRepo,
		today:         civil.Today,
	}
}

func (s *InvoiceServiceImpl) Build(ctx context.Context, req invoice.BuildInvoiceRequest) (invoice.Invoice, bool, error) {
	start, end, err := req.Period()
	if err != nil {
		return invoice.Invoice{}, false, err
	}

	loc, err := s.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		return invoice.Invoice{}, false, err
	}

	entries, err := s.timeEntryRepo.List(ctx, timeentry.Filter{LocationID: &loc.ID})
	if err != nil {
		return invoice.Invoice{}, false, err
	}

	inv, ok := Aggregate(loc, entries, start, end)
	if !ok {
		slog.Debug("no time entries for invoice", "location_id", loc.ID, "start", start.ISO(), "end", end.ISO())
		return invoice.Invoice{}, false, nil
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return invoice.Invoice{}, false, fmt.Errorf("load business profile: %w", err)
	}
	inv.From = profile
	inv.IssuedOn = s.today()

	if anomalies := inv.Anomalies(); len(anomalies) > 0 {
		slog.Warn("invoice has lines with unreadable times", "location_id", loc.ID, "count", len(anomalies))
	}
	return inv, true, nil
}

// Aggregate selects the entries of loc dated within [start, end] and builds
// the invoice lines. It reports false when nothing matches.
func Aggregate(loc location.Location, entries []timeentry.TimeEntry, start, end civil.Date) (invoice.Invoice, bool) {
	var selected []timeentry.TimeEntry
	total := decimal.Zero
	for _, e := range entries {
		if e.LocationID != loc.ID || !e.Date.Between(start, end) {
			continue
		}
		selected = append(selected, e)
		total = total.Add(e.DailyPay)
	}
	if len(selected) == 0 {
		return invoice.Invoice{}, false
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Date.Before(selected[j].Date)
	})

	rate := pay.DisplayRate(loc.Policy())
	items := make([]invoice.LineItem, 0, len(selected))
	var notes []string
	for _, e := range selected {
		item := invoice.LineItem{
			EntryID:   e.ID,
			Date:      e.Date,
			Arrival:   e.Arrival,
			Departure: e.Departure,
			Rate:      rate,
			Amount:    e.DailyPay,
		}
		if _, err := pay.ParseShift(e.Arrival, e.Departure); err != nil {
			item.Anomaly = true
		} else {
			item.Hours = pay.HoursWorked(e.Arrival, e.Departure)
		}
		items = append(items, item)

		if strings.TrimSpace(e.Notes) != "" {
			notes = append(notes, e.Date.String()+": "+e.Notes)
		}
	}

	return invoice.Invoice{
		LocationID: loc.ID,
		Start:      start,
		End:        end,
		Items:      items,
		Total:      total,
		Notes:      notes,
		BillTo:     loc,
	}, true
}
