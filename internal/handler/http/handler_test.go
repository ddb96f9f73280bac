package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/app"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/render"
	"github.com/cmlabs-hris/timetracker-backend-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		TotalItems int64 `json:"total_items"`
	} `json:"meta"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := sqlite.Open(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := app.New(app.SQLiteRepositories(db))
	router := NewRouter(
		RouterOptions{
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		NewLocationHandler(a.Locations),
		NewTimeEntryHandler(a.Entries, a.Lifecycle),
		NewInvoiceHandler(a.Invoices),
		NewBusinessHandler(a.Business),
	)

	return &testServer{t: t, handler: router}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

type idData struct {
	ID string `json:"id"`
}

func (s *testServer) createLocation(rate int64, rateType string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/locations", map[string]any{
		"facility_name": "Mercy General",
		"contact_name":  "Dana Ortiz",
		"city":          "Springfield",
		"state":         "IL",
		"zip":           "62701",
		"pay_rate":      rate,
		"pay_rate_type": rateType,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	var data idData
	decodeEnvelope(s.t, rec, &data)
	require.NotEmpty(s.t, data.ID)
	return data.ID
}

func (s *testServer) createEntry(locationID, date, arrival, departure string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/entries", map[string]any{
		"location_id": locationID,
		"date":        date,
		"arrival":     arrival,
		"departure":   departure,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	var data idData
	decodeEnvelope(s.t, rec, &data)
	return data.ID
}

func TestLocationHandler_CRUD(t *testing.T) {
	s := newTestServer(t)
	id := s.createLocation(20, "Per Hour")

	rec := s.do(http.MethodGet, "/api/v1/locations/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var loc struct {
		FacilityName string          `json:"facility_name"`
		PayRate      decimal.Decimal `json:"pay_rate"`
		PayRateType  string          `json:"pay_rate_type"`
	}
	decodeEnvelope(t, rec, &loc)
	assert.Equal(t, "Mercy General", loc.FacilityName)
	assert.True(t, loc.PayRate.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Per Hour", loc.PayRateType)

	rec = s.do(http.MethodPut, "/api/v1/locations/"+id, map[string]any{
		"facility_name": "Mercy West",
		"contact_name":  "Dana Ortiz",
		"pay_rate":      "250",
		"pay_rate_type": "Per Day",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/locations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.TotalItems)

	rec = s.do(http.MethodDelete, "/api/v1/locations/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/locations/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLocationHandler_Validation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/locations", map[string]any{
		"facility_name": "",
		"contact_name":  "Dana",
		"pay_rate":      -5,
		"pay_rate_type": "Per Week",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "facility_name")
	assert.Contains(t, env.Error.Details, "pay_rate")
	assert.Contains(t, env.Error.Details, "pay_rate_type")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", strings.NewReader("{"))
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTimeEntryHandler_CreateComputesPay(t *testing.T) {
	s := newTestServer(t)
	locID := s.createLocation(20, "Per Hour")
	id := s.createEntry(locID, "03/02/2026", "22:00", "06:00")

	rec := s.do(http.MethodGet, "/api/v1/entries/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entry struct {
		Date     string          `json:"date"`
		Hours    float64         `json:"hours"`
		DailyPay decimal.Decimal `json:"daily_pay"`
		State    string          `json:"state"`
	}
	decodeEnvelope(t, rec, &entry)
	assert.Equal(t, "2026-03-02", entry.Date)
	assert.InDelta(t, 8.0, entry.Hours, 1e-9)
	assert.True(t, entry.DailyPay.Equal(decimal.NewFromInt(160)), entry.DailyPay.String())
	assert.Equal(t, "open", entry.State)

	rec = s.do(http.MethodPost, "/api/v1/entries", map[string]any{
		"location_id": locID,
		"date":        "not a date",
		"arrival":     "08:00",
		"departure":   "17:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTimeEntryHandler_LockArchive(t *testing.T) {
	s := newTestServer(t)
	locID := s.createLocation(20, "Per Hour")
	id := s.createEntry(locID, "03/02/2026", "08:00", "16:00")

	rec := s.do(http.MethodPost, "/api/v1/entries/"+id+"/archive", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "This entry must be locked before it can be archived.", env.Error.Message)

	rec = s.do(http.MethodPost, "/api/v1/entries/"+id+"/lock", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		Locked   bool   `json:"locked"`
		Archived bool   `json:"archived"`
		State    string `json:"state"`
	}
	decodeEnvelope(t, rec, &status)
	assert.True(t, status.Locked)
	assert.Equal(t, "locked", status.State)

	rec = s.do(http.MethodPut, "/api/v1/entries/"+id, map[string]any{
		"location_id": locID,
		"date":        "03/02/2026",
		"arrival":     "08:00",
		"departure":   "18:00",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/entries/"+id, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/entries/"+id+"/archive", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/entries/"+id+"/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &status)
	assert.Equal(t, "finalized", status.State)
}

func TestTimeEntryHandler_UnknownID(t *testing.T) {
	s := newTestServer(t)
	missing := "0192f0c4-7d2a-7b3c-8d4e-5f6a7b8c9d0e"

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/entries/"+missing, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/entries/"+missing+"/status", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/v1/entries/"+missing+"/lock", nil).Code)

	rec := s.do(http.MethodPost, "/api/v1/entries/"+missing+"/archive", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "Entry not found.", env.Error.Message)
}

func TestTimeEntryHandler_ListAndCleanup(t *testing.T) {
	s := newTestServer(t)
	locID := s.createLocation(20, "Per Hour")
	keep := s.createEntry(locID, "12/31/2025", "08:00", "16:00")
	s.createEntry(locID, "01/01/2026", "08:00", "12:00")
	s.createEntry(locID, "01/02/2026", "08:00", "12:00")
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/entries/"+keep+"/lock", nil).Code)

	rec := s.do(http.MethodGet, "/api/v1/entries?from=12/31/2025&to=01/01/2026", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, int64(2), env.Meta.TotalItems)

	rec = s.do(http.MethodGet, "/api/v1/entries?locked=true", nil)
	env = decodeEnvelope(t, rec, nil)
	assert.Equal(t, int64(1), env.Meta.TotalItems)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/entries?locked=maybe", nil).Code)

	rec = s.do(http.MethodGet, "/api/v1/entries/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Locked     int             `json:"locked"`
		TotalHours float64         `json:"total_hours"`
		TotalPay   decimal.Decimal `json:"total_pay"`
	}
	decodeEnvelope(t, rec, &stats)
	assert.InDelta(t, 16.0, stats.TotalHours, 1e-9)
	assert.True(t, stats.TotalPay.Equal(decimal.NewFromInt(320)), stats.TotalPay.String())

	rec = s.do(http.MethodDelete, "/api/v1/entries/unlocked", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted map[string]int64
	decodeEnvelope(t, rec, &deleted)
	assert.Equal(t, int64(2), deleted["deleted"])

	rec = s.do(http.MethodGet, "/api/v1/entries", nil)
	env = decodeEnvelope(t, rec, nil)
	assert.Equal(t, int64(1), env.Meta.TotalItems)
}

func TestInvoiceHandler(t *testing.T) {
	s := newTestServer(t)
	locID := s.createLocation(20, "Per Hour")
	s.createEntry(locID, "01/02/2026", "08:00", "12:00")
	s.createEntry(locID, "12/31/2025", "08:00", "16:00")
	s.createEntry(locID, "02/15/2026", "08:00", "16:00")

	query := "?location_id=" + locID + "&start=12/01/2025&end=01/31/2026"

	rec := s.do(http.MethodGet, "/api/v1/invoices"+query, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var inv struct {
		Items []struct {
			Date string `json:"date"`
		} `json:"items"`
		Total decimal.Decimal `json:"total"`
	}
	decodeEnvelope(t, rec, &inv)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "12/31/2025", inv.Items[0].Date)
	assert.Equal(t, "01/02/2026", inv.Items[1].Date)
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(240)), inv.Total.String())

	rec = s.do(http.MethodGet, "/api/v1/invoices/preview"+query, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "TOTAL: $240.00")

	rec = s.do(http.MethodGet, "/api/v1/invoices/export"+query, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, render.XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Invoice_Mercy General_12-01-2025_to_01-31-2026.xlsx")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	rec = s.do(http.MethodGet, "/api/v1/invoices?location_id="+locID+"&start=03/01/2026&end=03/31/2026", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, messageNoEntries, env.Error.Message)

	rec = s.do(http.MethodGet, "/api/v1/invoices?location_id="+locID+"&start=02/01/2026&end=01/01/2026", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBusinessHandler(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/business-profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile struct {
		Name        string `json:"name"`
		DisplayName string `json:"display_name"`
	}
	decodeEnvelope(t, rec, &profile)
	assert.Equal(t, "Your Company Name", profile.DisplayName)

	rec = s.do(http.MethodPut, "/api/v1/business-profile", map[string]any{
		"name":  "Ortiz Staffing",
		"email": "billing@ortiz.example",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/business-profile", nil)
	decodeEnvelope(t, rec, &profile)
	assert.Equal(t, "Ortiz Staffing", profile.DisplayName)

	rec = s.do(http.MethodPut, "/api/v1/business-profile", map[string]any{"email": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
