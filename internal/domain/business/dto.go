package business

import "github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs.Add("email", "must be a valid email address")
	}

	return errs.Err()
}

type ProfileResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

func NewProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		Name:        p.Name,
		DisplayName: p.DisplayName(),
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		Zip:         p.Zip,
		Phone:       p.Phone,
		Email:       p.Email,
	}
}
