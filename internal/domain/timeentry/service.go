package timeentry

import "context"

// LifecycleService is the only path that mutates locked/archived or
// bulk-deletes entries.
type LifecycleService interface {
	// IsLocked returns false for an unknown id
	IsLocked(ctx context.Context, id string) (bool, error)

	// IsArchived returns false for an unknown id
	IsArchived(ctx context.Context, id string) (bool, error)

	Status(ctx context.Context, id string) (StatusResponse, error)

	// ToggleLock flips locked; unknown ids are a no-op
	ToggleLock(ctx context.Context, id string) error

	// ToggleArchive reports refusals in the result, not as errors
	ToggleArchive(ctx context.Context, id string) (ArchiveResult, error)

	// DeleteUnlockedEntries removes every entry that is not locked
	DeleteUnlockedEntries(ctx context.Context) (int64, error)

	CountLocked(ctx context.Context) (int, error)
	CountArchived(ctx context.Context) (int, error)
	CountUnlocked(ctx context.Context) (int, error)
	Stats(ctx context.Context) (StatsResponse, error)
}

// EntryService records shifts and computes their pay
type EntryService interface {
	Create(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	Get(ctx context.Context, id string) (TimeEntryResponse, error)
	List(ctx context.Context, filter ListTimeEntryRequest) ([]TimeEntryResponse, error)

	// Update is refused while the entry is locked
	Update(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)

	// Delete is refused while the entry is locked; unknown ids are a no-op
	Delete(ctx context.Context, id string) error
}
