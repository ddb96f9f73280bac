package location

import "context"

// LocationService manages client locations and their pay policy
type LocationService interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	Get(ctx context.Context, id string) (LocationResponse, error)
	List(ctx context.Context) ([]LocationResponse, error)
	Update(ctx context.Context, req UpdateLocationRequest) (LocationResponse, error)

	// Delete removes the location and every time entry recorded against it
	Delete(ctx context.Context, id string) error
}
