package timeentry

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/service/pay"
	"github.com/shopspring/decimal"
)

type LifecycleServiceImpl struct {
	tx            database.Transactor
	timeEntryRepo timeentry.TimeEntryRepository
}

func NewLifecycleService(tx database.Transactor, timeEntryRepo timeentry.TimeEntryRepository) timeentry.LifecycleService {
	return &LifecycleServiceImpl{tx: tx, timeEntryRepo: timeEntryRepo}
}

// lookup returns ok=false for an unknown id.
func (s *LifecycleServiceImpl) lookup(ctx context.Context, id string) (timeentry.TimeEntry, bool, error) {
	entry, err := s.timeEntryRepo.GetByID(ctx, id)
	if errors.Is(err, timeentry.ErrTimeEntryNotFound) {
		return timeentry.TimeEntry{}, false, nil
	}
	if err != nil {
		return timeentry.TimeEntry{}, false, err
	}
	return entry, true, nil
}

func (s *LifecycleServiceImpl) IsLocked(ctx context.Context, id string) (bool, error) {
	entry, ok, err := s.lookup(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	return entry.Locked, nil
}

func (s *LifecycleServiceImpl) IsArchived(ctx context.Context, id string) (bool, error) {
	entry, ok, err := s.lookup(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	return entry.Archived, nil
}

func (s *LifecycleServiceImpl) Status(ctx context.Context, id string) (timeentry.StatusResponse, error) {
	entry, err := s.timeEntryRepo.GetByID(ctx, id)
	if err != nil {
		return timeentry.StatusResponse{}, err
	}
	return timeentry.StatusResponse{
		ID:       entry.ID,
		Locked:   entry.Locked,
		Archived: entry.Archived,
		State:    entry.State().String(),
	}, nil
}

func (s *LifecycleServiceImpl) ToggleLock(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, ok, err := s.lookup(ctx, id)
		if err != nil || !ok {
			return err
		}

		next := entry.State().ToggleLock()
		locked := next.Locked()
		if err := s.timeEntryRepo.UpdateFlags(ctx, id, &locked, nil); err != nil {
			return err
		}

		slog.Info("time entry lock toggled", "entry_id", id, "from", entry.State().String(), "to", next.String())
		return nil
	})
}

func (s *LifecycleServiceImpl) ToggleArchive(ctx context.Context, id string) (timeentry.ArchiveResult, error) {
	var result timeentry.ArchiveResult

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, ok, err := s.lookup(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			result = timeentry.ArchiveResult{Message: timeentry.MessageEntryNotFound}
			return nil
		}

		current := entry.State()
		next, err := current.ToggleArchive()
		if errors.Is(err, timeentry.ErrMustLockBeforeArchive) {
			result = timeentry.ArchiveResult{Archived: current.Archived(), Message: timeentry.MessageMustLockFirst}
			return nil
		}

		archived := next.Archived()
		if err := s.timeEntryRepo.UpdateFlags(ctx, id, nil, &archived); err != nil {
			return err
		}

		slog.Info("time entry archive toggled", "entry_id", id, "from", current.String(), "to", next.String())
		result = timeentry.ArchiveResult{Success: true, Archived: archived}
		return nil
	})
	if err != nil {
		return timeentry.ArchiveResult{}, err
	}

	return result, nil
}

func (s *LifecycleServiceImpl) DeleteUnlockedEntries(ctx context.Context) (int64, error) {
	n, err := s.timeEntryRepo.DeleteUnlocked(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Warn("unlocked time entries deleted", "count", n)
	}
	return n, nil
}

func (s *LifecycleServiceImpl) CountLocked(ctx context.Context) (int, error) {
	c, err := s.timeEntryRepo.Counts(ctx)
	return c.Locked, err
}

func (s *LifecycleServiceImpl) CountArchived(ctx context.Context) (int, error) {
	c, err := s.timeEntryRepo.Counts(ctx)
	return c.Archived, err
}

func (s *LifecycleServiceImpl) CountUnlocked(ctx context.Context) (int, error) {
	c, err := s.timeEntryRepo.Counts(ctx)
	return c.Unlocked, err
}

// Stats sums hours and stored pay over every entry.
func (s *LifecycleServiceImpl) Stats(ctx context.Context) (timeentry.StatsResponse, error) {
	counts, err := s.timeEntryRepo.Counts(ctx)
	if err != nil {
		return timeentry.StatsResponse{}, err
	}

	entries, err := s.timeEntryRepo.List(ctx, timeentry.Filter{})
	if err != nil {
		return timeentry.StatsResponse{}, err
	}

	stats := timeentry.StatsResponse{Counts: counts, TotalPay: decimal.Zero}
	for _, e := range entries {
		stats.TotalHours += pay.HoursWorked(e.Arrival, e.Departure)
		stats.TotalPay = stats.TotalPay.Add(e.DailyPay)
	}
	stats.TotalPay = pay.RoundCurrency(stats.TotalPay)
	return stats, nil
}
