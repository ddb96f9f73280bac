package timeentry

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	lifecycle timeentry.LifecycleService
	entries   timeentry.EntryService
	entryRepo timeentry.TimeEntryRepository
	locRepo   location.LocationRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := sqlite.Open(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tx := sqlite.NewTransactor(db)
	entryRepo := sqlite.NewTimeEntryRepository(db)
	locRepo := sqlite.NewLocationRepository(db)

	return fixture{
		lifecycle: NewLifecycleService(tx, entryRepo),
		entries:   NewEntryService(tx, entryRepo, locRepo),
		entryRepo: entryRepo,
		locRepo:   locRepo,
	}
}

func (f fixture) location(t *testing.T, rate int64, rateType location.PayRateType) location.Location {
	t.Helper()
	l, err := f.locRepo.Create(context.Background(), location.Location{
		ID:           uuid.Must(uuid.NewV7()).String(),
		FacilityName: "Mercy General",
		ContactName:  "Dana",
		PayRate:      decimal.NewFromInt(rate),
		PayRateType:  rateType,
	})
	require.NoError(t, err)
	return l
}

func (f fixture) entry(t *testing.T, locationID, date, arrival, departure string) timeentry.TimeEntryResponse {
	t.Helper()
	e, err := f.entries.Create(context.Background(), timeentry.CreateTimeEntryRequest{
		LocationID: locationID,
		Date:       date,
		Arrival:    arrival,
		Departure:  departure,
	})
	require.NoError(t, err)
	return e
}
