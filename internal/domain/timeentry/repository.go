package timeentry

import "context"

// TimeEntryRepository is the persistence boundary for time entries.
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	List(ctx context.Context, filter Filter) ([]TimeEntry, error)

	// Update writes the shift fields. It never touches locked/archived.
	Update(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// UpdateFlags writes only the flags that are non-nil.
	UpdateFlags(ctx context.Context, id string, locked, archived *bool) error

	Delete(ctx context.Context, id string) error
	DeleteUnlocked(ctx context.Context) (int64, error)
	DeleteByLocationID(ctx context.Context, locationID string) (int64, error)

	Counts(ctx context.Context) (Counts, error)
}
