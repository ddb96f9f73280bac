package business

import (
	"context"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
)

type BusinessServiceImpl struct {
	profileRepo business.ProfileRepository
}

func NewBusinessService(profileRepo business.ProfileRepository) business.BusinessService {
	return &BusinessServiceImpl{profileRepo: profileRepo}
}

func (s *BusinessServiceImpl) GetProfile(ctx context.Context) (business.ProfileResponse, error) {
	p, err := s.profileRepo.Get(ctx)
	if err != nil {
		return business.ProfileResponse{}, err
	}
	return business.NewProfileResponse(p), nil
}

func (s *BusinessServiceImpl) UpdateProfile(ctx context.Context, req business.UpdateProfileRequest) (business.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return business.ProfileResponse{}, err
	}

	saved, err := s.profileRepo.Upsert(ctx, business.Profile{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		return business.ProfileResponse{}, err
	}
	return business.NewProfileResponse(saved), nil
}
