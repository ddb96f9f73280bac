package location

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type LocationServiceImpl struct {
	tx            database.Transactor
	locationRepo  location.LocationRepository
	timeEntryRepo timeentry.TimeEntryRepository
}

func NewLocationService(
	tx database.Transactor,
	locationRepo location.LocationRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
) location.LocationService {
	return &LocationServiceImpl{
		tx:            tx,
		locationRepo:  locationRepo,
		timeEntryRepo: timeEntryRepo,
	}
}

func fromRequest(id string, req location.CreateLocationRequest) location.Location {
	// Validate has already accepted the rate type.
	rateType, _ := location.ParsePayRateType(req.PayRateType)
	return location.Location{
		ID:           id,
		FacilityName: req.FacilityName,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		PayRate:      req.PayRate,
		PayRateType:  rateType,
	}
}

func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return location.LocationResponse{}, fmt.Errorf("generate location id: %w", err)
	}

	created, err := s.locationRepo.Create(ctx, fromRequest(id.String(), req))
	if err != nil {
		return location.LocationResponse{}, err
	}

	slog.Info("location created", "location_id", created.ID, "facility", created.FacilityName)
	return location.NewLocationResponse(created), nil
}

func (s *LocationServiceImpl) Get(ctx context.Context, id string) (location.LocationResponse, error) {
	l, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return location.NewLocationResponse(l), nil
}

func (s *LocationServiceImpl) List(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, l := range locations {
		responses = append(responses, location.NewLocationResponse(l))
	}
	return responses, nil
}

// Update changes the pay policy for future entries only. Stored daily pay of
// existing entries is left as it was computed.
func (s *LocationServiceImpl) Update(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	updated, err := s.locationRepo.Update(ctx, fromRequest(req.ID, req.CreateLocationRequest))
	if err != nil {
		return location.LocationResponse{}, err
	}
	return location.NewLocationResponse(updated), nil
}

func (s *LocationServiceImpl) Delete(ctx context.Context, id string) error {
	var removed int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
			return err
		}

		n, err := s.timeEntryRepo.DeleteByLocationID(ctx, id)
		if err != nil {
			return err
		}
		removed = n

		return s.locationRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	slog.Info("location deleted", "location_id", id, "entries_removed", removed)
	return nil
}
