package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/business"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
)

type BusinessHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
}

type businessHandlerImpl struct {
	businessService business.BusinessService
}

func NewBusinessHandler(businessService business.BusinessService) BusinessHandler {
	return &businessHandlerImpl{businessService: businessService}
}

func (h *businessHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.businessService.GetProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *businessHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req business.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.businessService.UpdateProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business profile updated", result)
}
