package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const selectTimeEntry = `
	SELECT te.id, te.location_id, te.date, te.arrival, te.departure, te.daily_pay, te.notes,
		   te.locked, te.archived, te.created_at, te.updated_at,
		   l.facility_name
	FROM time_entries te
	LEFT JOIN locations l ON l.id = te.location_id
`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var (
		e        timeentry.TimeEntry
		date     time.Time
		locked   *bool
		archived *bool
	)
	err := row.Scan(
		&e.ID, &e.LocationID, &date, &e.Arrival, &e.Departure, &e.DailyPay, &e.Notes,
		&locked, &archived, &e.CreatedAt, &e.UpdatedAt,
		&e.LocationName,
	)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}

	e.Date = civil.DateOf(date)
	e.Locked = locked != nil && *locked
	e.Archived = archived != nil && *archived
	return e, nil
}

func (r *timeEntryRepository) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (id, location_id, date, arrival, departure, daily_pay, notes, locked, archived)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		e.ID, e.LocationID, e.Date.ISO(), e.Arrival, e.Departure, e.DailyPay, e.Notes, e.Locked, e.Archived,
	)
	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return r.GetByID(ctx, e.ID)
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanTimeEntry(q.QueryRow(ctx, selectTimeEntry+` WHERE te.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return e, nil
}

func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.Filter) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.LocationID != nil {
		conditions = append(conditions, "te.location_id = "+arg(*filter.LocationID))
	}
	if filter.From != nil {
		conditions = append(conditions, "te.date >= "+arg(filter.From.ISO())+"::date")
	}
	if filter.To != nil {
		conditions = append(conditions, "te.date <= "+arg(filter.To.ISO())+"::date")
	}
	if filter.Locked != nil {
		conditions = append(conditions, "COALESCE(te.locked, FALSE) = "+arg(*filter.Locked))
	}
	if filter.Archived != nil {
		conditions = append(conditions, "COALESCE(te.archived, FALSE) = "+arg(*filter.Archived))
	}

	query := selectTimeEntry
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY te.date, te.created_at, te.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidID(err) {
			return []timeentry.TimeEntry{}, nil
		}
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	entries := []timeentry.TimeEntry{}
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *timeEntryRepository) Update(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries SET
			location_id = $2, date = $3::date, arrival = $4, departure = $5,
			daily_pay = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, e.ID, e.LocationID, e.Date.ISO(), e.Arrival, e.Departure, e.DailyPay, e.Notes)
	if err != nil {
		if isInvalidID(err) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
	}

	return r.GetByID(ctx, e.ID)
}

func (r *timeEntryRepository) UpdateFlags(ctx context.Context, id string, locked, archived *bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries SET
			locked = COALESCE($2, locked),
			archived = COALESCE($3, archived),
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, locked, archived)
	if err != nil {
		if isInvalidID(err) {
			return timeentry.ErrTimeEntryNotFound
		}
		return fmt.Errorf("failed to update time entry flags: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return timeentry.ErrTimeEntryNotFound
		}
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}

func (r *timeEntryRepository) DeleteUnlocked(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE locked = FALSE OR locked IS NULL`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete unlocked time entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *timeEntryRepository) DeleteByLocationID(ctx context.Context, locationID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE location_id = $1`, locationID)
	if err != nil {
		if isInvalidID(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to delete time entries of location: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *timeEntryRepository) Counts(ctx context.Context) (timeentry.Counts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE locked = TRUE),
			COUNT(*) FILTER (WHERE archived = TRUE),
			COUNT(*) FILTER (WHERE locked = FALSE OR locked IS NULL)
		FROM time_entries
	`

	var c timeentry.Counts
	if err := q.QueryRow(ctx, query).Scan(&c.Locked, &c.Archived, &c.Unlocked); err != nil {
		return timeentry.Counts{}, fmt.Errorf("failed to count time entries: %w", err)
	}
	return c, nil
}
