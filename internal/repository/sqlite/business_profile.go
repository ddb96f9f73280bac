package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
)

type profileRow struct {
	Name      string       `db:"name"`
	Address   string       `db:"address"`
	City      string       `db:"city"`
	State     string       `db:"state"`
	Zip       string       `db:"zip"`
	Phone     string       `db:"phone"`
	Email     string       `db:"email"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func (r profileRow) toDomain() business.Profile {
	p := business.Profile{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Zip:     r.Zip,
		Phone:   r.Phone,
		Email:   r.Email,
	}
	if r.UpdatedAt.Valid {
		t := r.UpdatedAt.Time
		p.UpdatedAt = &t
	}
	return p
}

type profileRepository struct {
	db *database.SQLiteDB
}

func NewProfileRepository(db *database.SQLiteDB) business.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (business.Profile, error) {
	q := GetQuerier(ctx, r.db)

	var row profileRow
	err := q.GetContext(ctx, &row, `
		SELECT name, address, city, state, zip, phone, email, updated_at
		FROM business_profile
		WHERE id = ?`, business.ProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return business.Profile{}, nil
		}
		return business.Profile{}, fmt.Errorf("failed to get business profile: %w", err)
	}

	return row.toDomain(), nil
}

func (r *profileRepository) Upsert(ctx context.Context, p business.Profile) (business.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_profile (id, name, address, city, state, zip, phone, email, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			address = excluded.address,
			city = excluded.city,
			state = excluded.state,
			zip = excluded.zip,
			phone = excluded.phone,
			email = excluded.email,
			updated_at = excluded.updated_at
	`
	now := time.Now().UTC()
	if _, err := q.ExecContext(ctx, query,
		business.ProfileID, p.Name, p.Address, p.City, p.State, p.Zip, p.Phone, p.Email, now,
	); err != nil {
		return business.Profile{}, fmt.Errorf("failed to upsert business profile: %w", err)
	}

	p.UpdatedAt = &now
	return p, nil
}
