package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/domain"
)

type stubEventService struct {
	checkInRecords *domain.CheckInRecords
	checkInErr     error
	checkInAt      *time.Time
	checkInPercent *float64
	checkOutErr    error
	presence       *domain.PresenceReport
	presenceErr    error
	reportFile     string
	reportErr      error
}

func (s *stubEventService) Create(ctx context.Context, draft *domain.EventDraft) (*domain.EventView, error) {
	return nil, nil
}
func (s *stubEventService) GetByID(ctx context.Context, id string) (*domain.EventView, error) {
	return nil, nil
}
func (s *stubEventService) Update(ctx context.Context, id string, patch *domain.EventPatch) (*domain.EventView, error) {
	return nil, nil
}
func (s *stubEventService) Delete(ctx context.Context, id string) error { return nil }
func (s *stubEventService) Find(ctx context.Context, query *domain.EventQuery) (*domain.EventPage, error) {
	return nil, nil
}
func (s *stubEventService) CheckIn(ctx context.Context, eventID, guestEmail string, at *time.Time, attendancePercent *float64) (*domain.CheckInRecords, error) {
	s.checkInAt = at
	s.checkInPercent = attendancePercent
	return s.checkInRecords, s.checkInErr
}
func (s *stubEventService) CheckOut(ctx context.Context, eventID, guestEmail string, at *time.Time) (*domain.CheckInRecords, error) {
	return s.checkInRecords, s.checkOutErr
}
func (s *stubEventService) GetCheckInRecords(ctx context.Context, eventID, guestEmail string) (*domain.CheckInRecords, error) {
	return s.checkInRecords, s.checkInErr
}
func (s *stubEventService) GuestListByEventName(ctx context.Context, name string) (*domain.GuestList, error) {
	return nil, nil
}
func (s *stubEventService) GetPresentAbsent(ctx context.Context, eventID string) (*domain.PresenceReport, error) {
	return s.presence, s.presenceErr
}
func (s *stubEventService) GenerateReport(ctx context.Context, eventID string) (string, error) {
	return s.reportFile, s.reportErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeEnvelope(t *testing.T, body io.Reader) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func newCheckInRequest(eventID, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/eventos/"+eventID+"/check-in", strings.NewReader(body))
	r.SetPathValue("eventID", eventID)
	return r
}

func TestAttendanceController_CheckIn(t *testing.T) {
	t.Run("invalid email rejected before the service", func(t *testing.T) {
		ctrl := NewAttendanceController(testLogger(), &stubEventService{})
		w := httptest.NewRecorder()
		ctrl.CheckIn(w, newCheckInRequest("ev-1", `{"email_convidado":"not-an-email"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		ctrl := NewAttendanceController(testLogger(), &stubEventService{})
		w := httptest.NewRecorder()
		ctrl.CheckIn(w, newCheckInRequest("ev-1", `{"email_convidado":"a@b.com","bogus":1}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		svc := &stubEventService{checkInErr: domain.Conflict("Check-in já realizado para esse convidado")}
		ctrl := NewAttendanceController(testLogger(), svc)
		w := httptest.NewRecorder()
		ctrl.CheckIn(w, newCheckInRequest("ev-1", `{"email_convidado":"a@b.com"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeEnvelope(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeConflict, resp.Error.Code)
		assert.Equal(t, "Check-in já realizado para esse convidado", resp.Error.Message)
	})

	t.Run("guest not found maps to 404", func(t *testing.T) {
		svc := &stubEventService{checkInErr: domain.NotFound("Convidado não encontrado nesse evento para realizar o check-in")}
		ctrl := NewAttendanceController(testLogger(), svc)
		w := httptest.NewRecorder()
		ctrl.CheckIn(w, newCheckInRequest("ev-1", `{"email_convidado":"a@b.com"}`))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("passes timestamp and percentage through", func(t *testing.T) {
		svc := &stubEventService{checkInRecords: &domain.CheckInRecords{Records: []domain.CheckInRecord{}}}
		ctrl := NewAttendanceController(testLogger(), svc)
		w := httptest.NewRecorder()
		body := `{"email_convidado":"a@b.com","data":"2025-05-01T12:00:00Z","porcentagem_presenca":0.75}`
		ctrl.CheckIn(w, newCheckInRequest("ev-1", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, svc.checkInAt)
		assert.Equal(t, time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), svc.checkInAt.UTC())
		require.NotNil(t, svc.checkInPercent)
		assert.Equal(t, 0.75, *svc.checkInPercent)
	})
}

func TestAttendanceController_CheckOut(t *testing.T) {
	t.Run("no check-in maps to 409", func(t *testing.T) {
		svc := &stubEventService{checkOutErr: domain.Conflict("Check-in não realizado para esse convidado")}
		ctrl := NewAttendanceController(testLogger(), svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/eventos/ev-1/check-out", strings.NewReader(`{"email_convidado":"a@b.com"}`))
		r.SetPathValue("eventID", "ev-1")
		ctrl.CheckOut(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("success returns the record list", func(t *testing.T) {
		svc := &stubEventService{checkInRecords: &domain.CheckInRecords{Records: []domain.CheckInRecord{{ID: "r1"}}}}
		ctrl := NewAttendanceController(testLogger(), svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/eventos/ev-1/check-out", strings.NewReader(`{"email_convidado":"a@b.com"}`))
		r.SetPathValue("eventID", "ev-1")
		ctrl.CheckOut(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		resp := decodeEnvelope(t, strings.NewReader(body))
		assert.Nil(t, resp.Error)
		assert.Contains(t, body, `"registros"`)
	})
}

func TestAttendanceController_GetPresentAbsent(t *testing.T) {
	t.Run("not finalized maps to 409", func(t *testing.T) {
		svc := &stubEventService{presenceErr: domain.Conflict("Não é possível visualizar os presentes de um evento não finalizado")}
		ctrl := NewAttendanceController(testLogger(), svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/eventos/ev-1/presentes", nil)
		r.SetPathValue("eventID", "ev-1")
		ctrl.GetPresentAbsent(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("success wraps the report in the envelope", func(t *testing.T) {
		svc := &stubEventService{presence: &domain.PresenceReport{
			Present: []domain.PresentGuest{{Email: "ana@b.com", Permanence: "1h30m"}},
			Absent:  []string{"bob@b.com"},
		}}
		ctrl := NewAttendanceController(testLogger(), svc)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/eventos/ev-1/presentes", nil)
		r.SetPathValue("eventID", "ev-1")
		ctrl.GetPresentAbsent(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"presentes"`)
		assert.Contains(t, w.Body.String(), `"1h30m"`)
		assert.Contains(t, w.Body.String(), `"ausentes"`)
	})
}

func TestAttendanceController_GenerateReport(t *testing.T) {
	svc := &stubEventService{reportFile: "/reports/relatorio_ev-1.xlsx"}
	ctrl := NewAttendanceController(testLogger(), svc)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/eventos/ev-1/relatorio", nil)
	r.SetPathValue("eventID", "ev-1")
	ctrl.GenerateReport(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"arquivo":"/reports/relatorio_ev-1.xlsx"`)
}
