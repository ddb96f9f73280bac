package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

// timeEntryRow mirrors time_entries. locked and archived may be NULL on rows
// written by older clients; NULL reads as false.
type timeEntryRow struct {
	ID           string          `db:"id"`
	LocationID   string          `db:"location_id"`
	Date         civil.Date      `db:"date"`
	Arrival      string          `db:"arrival"`
	Departure    string          `db:"departure"`
	DailyPay     decimal.Decimal `db:"daily_pay"`
	Notes        string          `db:"notes"`
	Locked       sql.NullBool    `db:"locked"`
	Archived     sql.NullBool    `db:"archived"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	LocationName sql.NullString  `db:"location_name"`
}

func (r timeEntryRow) toDomain() timeentry.TimeEntry {
	e := timeentry.TimeEntry{
		ID:         r.ID,
		LocationID: r.LocationID,
		Date:       r.Date,
		Arrival:    r.Arrival,
		Departure:  r.Departure,
		DailyPay:   r.DailyPay,
		Notes:      r.Notes,
		Locked:     r.Locked.Valid && r.Locked.Bool,
		Archived:   r.Archived.Valid && r.Archived.Bool,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.LocationName.Valid {
		name := r.LocationName.String
		e.LocationName = &name
	}
	return e
}

const selectTimeEntry = `
	SELECT te.id, te.location_id, te.date, te.arrival, te.departure, te.daily_pay, te.notes,
		   te.locked, te.archived, te.created_at, te.updated_at,
		   l.facility_name AS location_name
	FROM time_entries te
	LEFT JOIN locations l ON l.id = te.location_id
`

type timeEntryRepository struct {
	db *database.SQLiteDB
}

func NewTimeEntryRepository(db *database.SQLiteDB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	now := time.Now().UTC()
	e.CreatedAt, e.UpdatedAt = now, now

	query := `
		INSERT INTO time_entries (
			id, location_id, date, arrival, departure, daily_pay, notes,
			locked, archived, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := q.ExecContext(ctx, query,
		e.ID, e.LocationID, e.Date.ISO(), e.Arrival, e.Departure, e.DailyPay.String(), e.Notes,
		e.Locked, e.Archived, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return r.GetByID(ctx, e.ID)
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	var row timeEntryRow
	if err := q.GetContext(ctx, &row, selectTimeEntry+` WHERE te.id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return row.toDomain(), nil
}

func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.Filter) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.LocationID != nil {
		conditions = append(conditions, "te.location_id = ?")
		args = append(args, *filter.LocationID)
	}
	if filter.From != nil {
		conditions = append(conditions, "te.date >= ?")
		args = append(args, filter.From.ISO())
	}
	if filter.To != nil {
		conditions = append(conditions, "te.date <= ?")
		args = append(args, filter.To.ISO())
	}
	if filter.Locked != nil {
		conditions = append(conditions, "COALESCE(te.locked, 0) = ?")
		args = append(args, *filter.Locked)
	}
	if filter.Archived != nil {
		conditions = append(conditions, "COALESCE(te.archived, 0) = ?")
		args = append(args, *filter.Archived)
	}

	query := selectTimeEntry
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY te.date, te.created_at, te.id"

	var rows []timeEntryRow
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	entries := make([]timeentry.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}

func (r *timeEntryRepository) Update(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries SET
			location_id = ?, date = ?, arrival = ?, departure = ?,
			daily_pay = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`
	res, err := q.ExecContext(ctx, query,
		e.LocationID, e.Date.ISO(), e.Arrival, e.Departure,
		e.DailyPay.String(), e.Notes, time.Now().UTC(),
		e.ID,
	)
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to update time entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
	}

	return r.GetByID(ctx, e.ID)
}

func (r *timeEntryRepository) UpdateFlags(ctx context.Context, id string, locked, archived *bool) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = ?"}
	args := []interface{}{time.Now().UTC()}
	if locked != nil {
		sets = append(sets, "locked = ?")
		args = append(args, *locked)
	}
	if archived != nil {
		sets = append(sets, "archived = ?")
		args = append(args, *archived)
	}
	args = append(args, id)

	res, err := q.ExecContext(ctx, "UPDATE time_entries SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("failed to update time entry flags: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timeEntryRepository) DeleteUnlocked(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM time_entries WHERE locked = 0 OR locked IS NULL`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete unlocked time entries: %w", err)
	}
	return res.RowsAffected()
}

func (r *timeEntryRepository) DeleteByLocationID(ctx context.Context, locationID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM time_entries WHERE location_id = ?`, locationID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete time entries of location: %w", err)
	}
	return res.RowsAffected()
}

func (r *timeEntryRepository) Counts(ctx context.Context) (timeentry.Counts, error) {
	q := GetQuerier(ctx, r.db)

	var c struct {
		Locked   int `db:"locked"`
		Archived int `db:"archived"`
		Unlocked int `db:"unlocked"`
	}
	err := q.GetContext(ctx, &c, `
		SELECT
			COALESCE(SUM(CASE WHEN locked = 1 THEN 1 ELSE 0 END), 0) AS locked,
			COALESCE(SUM(CASE WHEN archived = 1 THEN 1 ELSE 0 END), 0) AS archived,
			COALESCE(SUM(CASE WHEN locked = 0 OR locked IS NULL THEN 1 ELSE 0 END), 0) AS unlocked
		FROM time_entries`)
	if err != nil {
		return timeentry.Counts{}, fmt.Errorf("failed to count time entries: %w", err)
	}

	return timeentry.Counts{Locked: c.Locked, Archived: c.Archived, Unlocked: c.Unlocked}, nil
}
