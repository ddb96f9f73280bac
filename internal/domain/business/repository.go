package business

import "context"

type ProfileRepository interface {
	// Get returns an empty profile when none was saved yet
	Get(ctx context.Context) (Profile, error)
	Upsert(ctx context.Context, profile Profile) (Profile, error)
}
