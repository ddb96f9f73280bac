package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isInvalidID reports a malformed uuid parameter, which can match no row.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

const locationColumns = `id, facility_name, contact_name, contact_email, contact_phone,
	address, city, state, zip, pay_rate, pay_rate_type, created_at, updated_at`

func scanLocation(row pgx.Row) (location.Location, error) {
	var l location.Location
	var payRateType string
	err := row.Scan(
		&l.ID, &l.FacilityName, &l.ContactName, &l.ContactEmail, &l.ContactPhone,
		&l.Address, &l.City, &l.State, &l.Zip, &l.PayRate, &payRateType, &l.CreatedAt, &l.UpdatedAt,
	)
	l.PayRateType = location.PayRateType(payRateType)
	return l, err
}

func (r *locationRepository) Create(ctx context.Context, l location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO locations (id, facility_name, contact_name, contact_email, contact_phone,
			address, city, state, zip, pay_rate, pay_rate_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + locationColumns

	created, err := scanLocation(q.QueryRow(ctx, query,
		l.ID, l.FacilityName, l.ContactName, l.ContactEmail, l.ContactPhone,
		l.Address, l.City, l.State, l.Zip, l.PayRate, string(l.PayRateType),
	))
	if err != nil {
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return created, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanLocation(q.QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location: %w", err)
	}

	return l, nil
}

func (r *locationRepository) List(ctx context.Context) ([]location.Location, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY facility_name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}

func (r *locationRepository) Update(ctx context.Context, l location.Location) (location.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE locations SET
			facility_name = $2, contact_name = $3, contact_email = $4, contact_phone = $5,
			address = $6, city = $7, state = $8, zip = $9,
			pay_rate = $10, pay_rate_type = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + locationColumns

	updated, err := scanLocation(q.QueryRow(ctx, query,
		l.ID, l.FacilityName, l.ContactName, l.ContactEmail, l.ContactPhone,
		l.Address, l.City, l.State, l.Zip, l.PayRate, string(l.PayRateType),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to update location: %w", err)
	}

	return updated, nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return location.ErrLocationNotFound
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}
	return nil
}
