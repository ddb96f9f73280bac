package timeentry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/service/pay"
	"github.com/google/uuid"
)

type EntryServiceImpl struct {
	tx            database.Transactor
	timeEntryRepo timeentry.TimeEntryRepository
	locationRepo  location.LocationRepository
}

func NewEntryService(
	tx database.Transactor,
	timeEntryRepo timeentry.TimeEntryRepository,
	locationRepo location.LocationRepository,
) timeentry.EntryService {
	return &EntryServiceImpl{
		tx:            tx,
		timeEntryRepo: timeEntryRepo,
		locationRepo:  locationRepo,
	}
}

func NewTimeEntryResponse(e timeentry.TimeEntry) timeentry.TimeEntryResponse {
	return timeentry.TimeEntryResponse{
		ID:           e.ID,
		LocationID:   e.LocationID,
		LocationName: e.LocationName,
		Date:         e.Date,
		Arrival:      e.Arrival,
		Departure:    e.Departure,
		Hours:        pay.HoursWorked(e.Arrival, e.Departure),
		DailyPay:     e.DailyPay,
		Notes:        e.Notes,
		Locked:       e.Locked,
		Archived:     e.Archived,
		State:        e.State().String(),
	}
}

// priced fills the shift fields from req and computes daily pay under the
// location's current policy.
func (s *EntryServiceImpl) priced(ctx context.Context, entry timeentry.TimeEntry, req timeentry.CreateTimeEntryRequest, date civil.Date) (timeentry.TimeEntry, error) {
	loc, err := s.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	entry.LocationID = loc.ID
	entry.Date = date
	entry.Arrival = strings.TrimSpace(req.Arrival)
	entry.Departure = strings.TrimSpace(req.Departure)
	entry.Notes = req.Notes
	entry.DailyPay = pay.RoundCurrency(pay.DailyPay(loc.Policy(), entry.Arrival, entry.Departure))
	return entry, nil
}

func (s *EntryServiceImpl) Create(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	date, err := req.Validate()
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("generate time entry id: %w", err)
	}

	entry, err := s.priced(ctx, timeentry.TimeEntry{ID: id.String()}, req, date)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	created, err := s.timeEntryRepo.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	slog.Info("time entry created", "entry_id", created.ID, "location_id", created.LocationID, "date", created.Date.ISO(), "daily_pay", created.DailyPay.StringFixed(2))
	return NewTimeEntryResponse(created), nil
}

func (s *EntryServiceImpl) Get(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	entry, err := s.timeEntryRepo.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return NewTimeEntryResponse(entry), nil
}

func (s *EntryServiceImpl) List(ctx context.Context, req timeentry.ListTimeEntryRequest) ([]timeentry.TimeEntryResponse, error) {
	filter, err := req.ToFilter()
	if err != nil {
		return nil, err
	}

	entries, err := s.timeEntryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, NewTimeEntryResponse(e))
	}
	return responses, nil
}

func (s *EntryServiceImpl) Update(ctx context.Context, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	date, err := req.Validate()
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	var updated timeentry.TimeEntry
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.timeEntryRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if current.Locked {
			return timeentry.ErrTimeEntryLocked
		}

		entry, err := s.priced(ctx, current, req.CreateTimeEntryRequest, date)
		if err != nil {
			return err
		}

		updated, err = s.timeEntryRepo.Update(ctx, entry)
		return err
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	return NewTimeEntryResponse(updated), nil
}

func (s *EntryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.timeEntryRepo.GetByID(ctx, id)
		if errors.Is(err, timeentry.ErrTimeEntryNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if current.Locked {
			return timeentry.ErrTimeEntryLocked
		}

		if err := s.timeEntryRepo.Delete(ctx, id); err != nil {
			return err
		}
		slog.Info("time entry deleted", "entry_id", id)
		return nil
	})
}
