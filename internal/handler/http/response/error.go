package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/invoice"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/location"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, location.ErrNegativePayRate):
		ValidationError(w, map[string]string{"pay_rate": err.Error()})
	case errors.Is(err, location.ErrInvalidPayRateType):
		ValidationError(w, map[string]string{"pay_rate_type": err.Error()})

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrTimeEntryLocked):
		Conflict(w, "Time entry is locked")
	case errors.Is(err, timeentry.ErrMustLockBeforeArchive):
		Conflict(w, timeentry.MessageMustLockFirst)

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvalidPeriod):
		ValidationError(w, map[string]string{"end": "must not be before start"})

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
