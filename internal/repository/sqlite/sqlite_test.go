package sqlite_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *database.SQLiteDB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func seedLocation(t *testing.T, repo location.LocationRepository, name string) location.Location {
	t.Helper()
	l, err := repo.Create(context.Background(), location.Location{
		ID:           newID(t),
		FacilityName: name,
		ContactName:  "Dana",
		PayRate:      decimal.NewFromInt(400),
		PayRateType:  location.PayRateTypePerDay,
	})
	require.NoError(t, err)
	return l
}

func seedEntry(t *testing.T, repo timeentry.TimeEntryRepository, locationID, date string) timeentry.TimeEntry {
	t.Helper()
	e, err := repo.Create(context.Background(), timeentry.TimeEntry{
		ID:         newID(t),
		LocationID: locationID,
		Date:       civil.MustParseDate(date),
		Arrival:    "08:00:00",
		Departure:  "16:00:00",
		DailyPay:   decimal.RequireFromString("400.00"),
	})
	require.NoError(t, err)
	return e
}

func TestMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	runner := sqlite.NewMigrationRunner(db)

	require.NoError(t, runner.Migrate(context.Background(), -1))

	current, err := runner.CurrentVersion(context.Background())
	require.NoError(t, err)
	latest, err := runner.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, latest, current)
	assert.Equal(t, 1, current)
}

func TestMigrations_DownAndUp(t *testing.T) {
	db := openTestDB(t)
	runner := sqlite.NewMigrationRunner(db)
	ctx := context.Background()

	require.NoError(t, runner.Migrate(ctx, 0))
	current, err := runner.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, current)

	require.NoError(t, runner.Migrate(ctx, -1))
	_, err = sqlite.NewLocationRepository(db).List(ctx)
	assert.NoError(t, err)
}

func TestLocationRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewLocationRepository(db)
	ctx := context.Background()

	created := seedLocation(t, repo, "Mercy General")

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mercy General", got.FacilityName)
	assert.True(t, decimal.NewFromInt(400).Equal(got.PayRate))
	assert.Equal(t, location.PayRateTypePerDay, got.PayRateType)

	got.City = "Sacramento"
	got.PayRateType = location.PayRateTypePerHour
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Sacramento", updated.City)
	assert.Equal(t, location.PayRateTypePerHour, updated.PayRateType)

	seedLocation(t, repo, "Alder Clinic")
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alder Clinic", all[0].FacilityName)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, location.ErrLocationNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), location.ErrLocationNotFound)
}

func TestTimeEntryRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	locations := sqlite.NewLocationRepository(db)
	entries := sqlite.NewTimeEntryRepository(db)
	ctx := context.Background()

	loc := seedLocation(t, locations, "Mercy General")
	created := seedEntry(t, entries, loc.ID, "03/02/2026")

	got, err := entries.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, civil.MustParseDate("2026-03-02"), got.Date)
	assert.True(t, decimal.RequireFromString("400").Equal(got.DailyPay))
	assert.False(t, got.Locked)
	assert.False(t, got.Archived)
	require.NotNil(t, got.LocationName)
	assert.Equal(t, "Mercy General", *got.LocationName)

	_, err = entries.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, timeentry.ErrTimeEntryNotFound)
}

func TestTimeEntryRepository_ListFilters(t *testing.T) {
	db := openTestDB(t)
	locations := sqlite.NewLocationRepository(db)
	entries := sqlite.NewTimeEntryRepository(db)
	ctx := context.Background()

	a := seedLocation(t, locations, "A")
	b := seedLocation(t, locations, "B")
	seedEntry(t, entries, a.ID, "01/02/2026")
	dec := seedEntry(t, entries, a.ID, "12/31/2025")
	seedEntry(t, entries, b.ID, "01/01/2026")

	locked := true
	require.NoError(t, entries.UpdateFlags(ctx, dec.ID, &locked, nil))

	all, err := entries.List(ctx, timeentry.Filter{LocationID: &a.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Chronological across the year boundary.
	assert.Equal(t, dec.ID, all[0].ID)

	from := civil.MustParseDate("12/31/2025")
	to := civil.MustParseDate("01/01/2026")
	window, err := entries.List(ctx, timeentry.Filter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	onlyLocked, err := entries.List(ctx, timeentry.Filter{Locked: &locked})
	require.NoError(t, err)
	require.Len(t, onlyLocked, 1)
	assert.Equal(t, dec.ID, onlyLocked[0].ID)
}

func TestTimeEntryRepository_NullFlagsReadAsFalse(t *testing.T) {
	db := openTestDB(t)
	locations := sqlite.NewLocationRepository(db)
	entries := sqlite.NewTimeEntryRepository(db)
	ctx := context.Background()

	loc := seedLocation(t, locations, "Mercy General")
	e := seedEntry(t, entries, loc.ID, "03/02/2026")

	_, err := db.ExecContext(ctx, `UPDATE time_entries SET locked = NULL, archived = NULL WHERE id = ?`, e.ID)
	require.NoError(t, err)

	got, err := entries.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.Locked)
	assert.False(t, got.Archived)

	counts, err := entries.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeentry.Counts{Locked: 0, Archived: 0, Unlocked: 1}, counts)

	n, err := entries.DeleteUnlocked(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTimeEntryRepository_FlagsAndBulkDeletes(t *testing.T) {
	db := openTestDB(t)
	locations := sqlite.NewLocationRepository(db)
	entries := sqlite.NewTimeEntryRepository(db)
	ctx := context.Background()

	loc := seedLocation(t, locations, "Mercy General")
	e1 := seedEntry(t, entries, loc.ID, "03/02/2026")
	e2 := seedEntry(t, entries, loc.ID, "03/03/2026")
	seedEntry(t, entries, loc.ID, "03/04/2026")

	yes := true
	require.NoError(t, entries.UpdateFlags(ctx, e1.ID, &yes, &yes))
	require.NoError(t, entries.UpdateFlags(ctx, e2.ID, &yes, nil))
	assert.ErrorIs(t, entries.UpdateFlags(ctx, "missing", &yes, nil), timeentry.ErrTimeEntryNotFound)

	counts, err := entries.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, timeentry.Counts{Locked: 2, Archived: 1, Unlocked: 1}, counts)

	n, err := entries.DeleteUnlocked(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = entries.DeleteByLocationID(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestTimeEntryRepository_UpdateKeepsFlags(t *testing.T) {
	db := openTestDB(t)
	locations := sqlite.NewLocationRepository(db)
	entries := sqlite.NewTimeEntryRepository(db)
	ctx := context.Background()

	loc := seedLocation(t, locations, "Mercy General")
	e := seedEntry(t, entries, loc.ID, "03/02/2026")
	yes := true
	require.NoError(t, entries.UpdateFlags(ctx, e.ID, nil, &yes))

	e.Notes = "covered night shift"
	e.Departure = "20:00:00"
	updated, err := entries.Update(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, "covered night shift", updated.Notes)
	assert.Equal(t, "20:00:00", updated.Departure)
	assert.True(t, updated.Archived)
}

func TestTransactor_RollsBack(t *testing.T) {
	db := openTestDB(t)
	locations := sqlite.NewLocationRepository(db)
	tx := sqlite.NewTransactor(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		seedLocationCtx(t, ctx, locations)
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	all, err := locations.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, tx.WithinTransaction(ctx, func(ctx context.Context) error {
		seedLocationCtx(t, ctx, locations)
		return nil
	}))
	all, err = locations.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func seedLocationCtx(t *testing.T, ctx context.Context, repo location.LocationRepository) {
	t.Helper()
	_, err := repo.Create(ctx, location.Location{
		ID:           newID(t),
		FacilityName: "Tx Clinic",
		ContactName:  "Lee",
		PayRate:      decimal.NewFromInt(50),
		PayRateType:  location.PayRateTypePerHour,
	})
	require.NoError(t, err)
}

func TestProfileRepository(t *testing.T) {
	db := openTestDB(t)
	repo := sqlite.NewProfileRepository(db)
	ctx := context.Background()

	empty, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, business.DefaultDisplayName, empty.DisplayName())
	assert.Nil(t, empty.UpdatedAt)

	_, err = repo.Upsert(ctx, business.Profile{Name: "Acme Staffing", City: "Fresno"})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, business.Profile{Name: "Acme Staffing LLC", Email: "billing@acme.test"})
	require.NoError(t, err)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Staffing LLC", got.Name)
	assert.Equal(t, "", got.City)
	assert.Equal(t, "billing@acme.test", got.Email)
	assert.NotNil(t, got.UpdatedAt)
}
