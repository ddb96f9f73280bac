package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type locationRow struct {
	ID           string          `db:"id"`
	FacilityName string          `db:"facility_name"`
	ContactName  string          `db:"contact_name"`
	ContactEmail string          `db:"contact_email"`
	ContactPhone string          `db:"contact_phone"`
	Address      string          `db:"address"`
	City         string          `db:"city"`
	State        string          `db:"state"`
	Zip          string          `db:"zip"`
	PayRate      decimal.Decimal `db:"pay_rate"`
	PayRateType  string          `db:"pay_rate_type"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r locationRow) toDomain() location.Location {
	return location.Location{
		ID:           r.ID,
		FacilityName: r.FacilityName,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		PayRate:      r.PayRate,
		PayRateType:  location.PayRateType(r.PayRateType),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

const locationColumns = `id, facility_name, contact_name, contact_email, contact_phone,
	address, city, state, zip, pay_rate, pay_rate_type, created_at, updated_at`

type locationRepository struct {
	db *database.SQLiteDB
}

func NewLocationRepository(db *database.SQLiteDB) location.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, l location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	now := time.Now().UTC()
	l.CreatedAt, l.UpdatedAt = now, now

	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := q.ExecContext(ctx, query,
		l.ID, l.FacilityName, l.ContactName, l.ContactEmail, l.ContactPhone,
		l.Address, l.City, l.State, l.Zip, l.PayRate.String(), string(l.PayRateType), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return l, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	var row locationRow
	err := q.GetContext(ctx, &row, `SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location: %w", err)
	}

	return row.toDomain(), nil
}

func (r *locationRepository) List(ctx context.Context) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	var rows []locationRow
	if err := q.SelectContext(ctx, &rows, `SELECT `+locationColumns+` FROM locations ORDER BY facility_name, id`); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]location.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, row.toDomain())
	}
	return locations, nil
}

func (r *locationRepository) Update(ctx context.Context, l location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations SET
			facility_name = ?, contact_name = ?, contact_email = ?, contact_phone = ?,
			address = ?, city = ?, state = ?, zip = ?,
			pay_rate = ?, pay_rate_type = ?, updated_at = ?
		WHERE id = ?
	`
	res, err := q.ExecContext(ctx, query,
		l.FacilityName, l.ContactName, l.ContactEmail, l.ContactPhone,
		l.Address, l.City, l.State, l.Zip,
		l.PayRate.String(), string(l.PayRateType), time.Now().UTC(),
		l.ID,
	)
	if err != nil {
		return location.Location{}, fmt.Errorf("failed to update location: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return location.Location{}, location.ErrLocationNotFound
	}

	return r.GetByID(ctx, l.ID)
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return location.ErrLocationNotFound
	}
	return nil
}
