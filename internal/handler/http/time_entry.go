package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeEntryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Lifecycle
	Status(w http.ResponseWriter, r *http.Request)
	ToggleLock(w http.ResponseWriter, r *http.Request)
	ToggleArchive(w http.ResponseWriter, r *http.Request)
	DeleteUnlocked(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	entryService     timeentry.EntryService
	lifecycleService timeentry.LifecycleService
}

func NewTimeEntryHandler(entryService timeentry.EntryService, lifecycleService timeentry.LifecycleService) TimeEntryHandler {
	return &timeEntryHandlerImpl{
		entryService:     entryService,
		lifecycleService: lifecycleService,
	}
}

func (h *timeEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timeentry.CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.entryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created", result)
}

func (h *timeEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.entryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parseBoolParam(r *http.Request, name string) (*bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func (h *timeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := timeentry.ListTimeEntryRequest{
		LocationID: q.Get("location_id"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}

	var ok bool
	if req.Locked, ok = parseBoolParam(r, "locked"); !ok {
		response.BadRequest(w, "Invalid locked parameter", nil)
		return
	}
	if req.Archived, ok = parseBoolParam(r, "archived"); !ok {
		response.BadRequest(w, "Invalid archived parameter", nil)
		return
	}

	result, err := h.entryService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: int64(len(result))})
}

func (h *timeEntryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timeentry.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.entryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated", result)
}

func (h *timeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.entryService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}

func (h *timeEntryHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.Status(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeEntryHandlerImpl) ToggleLock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.lifecycleService.ToggleLock(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	// ToggleLock is silent for unknown ids; report the resulting status.
	result, err := h.lifecycleService.Status(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeEntryHandlerImpl) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.ToggleArchive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch {
	case result.Success:
		response.Success(w, result)
	case result.Message == timeentry.MessageEntryNotFound:
		response.NotFound(w, result.Message)
	default:
		response.Conflict(w, result.Message)
	}
}

func (h *timeEntryHandlerImpl) DeleteUnlocked(w http.ResponseWriter, r *http.Request) {
	n, err := h.lifecycleService.DeleteUnlockedEntries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unlocked time entries deleted", map[string]int64{"deleted": n})
}

func (h *timeEntryHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.lifecycleService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
