package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) business.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (business.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT name, address, city, state, zip, phone, email, updated_at
		FROM business_profile
		WHERE id = $1
	`

	var p business.Profile
	err := q.QueryRow(ctx, query, business.ProfileID).Scan(
		&p.Name, &p.Address, &p.City, &p.State, &p.Zip, &p.Phone, &p.Email, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return business.Profile{}, nil
		}
		return business.Profile{}, fmt.Errorf("failed to get business profile: %w", err)
	}

	return p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile business.Profile) (business.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO business_profile (id, name, address, city, state, zip, phone, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			updated_at = NOW()
		RETURNING name, address, city, state, zip, phone, email, updated_at
	`

	var p business.Profile
	err := q.QueryRow(ctx, query,
		business.ProfileID, profile.Name, profile.Address, profile.City, profile.State,
		profile.Zip, profile.Phone, profile.Email,
	).Scan(&p.Name, &p.Address, &p.City, &p.State, &p.Zip, &p.Phone, &p.Email, &p.UpdatedAt)
	if err != nil {
		return business.Profile{}, fmt.Errorf("failed to upsert business profile: %w", err)
	}

	return p, nil
}
