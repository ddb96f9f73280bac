package business

import "context"

type BusinessService interface {
	GetProfile(ctx context.Context) (ProfileResponse, error)

	// UpdateProfile overwrites every field
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
}
