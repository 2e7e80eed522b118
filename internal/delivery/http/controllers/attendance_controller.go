package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/domain"
)

// CheckInRequest is the request body for POST /eventos/{eventID}/check-in.
// data is optional (defaults to now). porcentagem_presenca switches to
// percentage mode: the event must be FINALIZADO and a full check-in/check-out
// pair is synthesized from the event duration times the fraction.
type CheckInRequest struct {
	GuestEmail        string     `json:"email_convidado"`
	At                *time.Time `json:"data"`
	AttendancePercent *float64   `json:"porcentagem_presenca"`
}

// Validate implements Validator.
func (c CheckInRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(c.GuestEmail)
	if email == "" {
		errs = append(errs, "email_convidado is required")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "email_convidado must be a valid email address")
	}
	return errs
}

// CheckOutRequest is the request body for POST /eventos/{eventID}/check-out.
// data is optional (defaults to now).
type CheckOutRequest struct {
	GuestEmail string     `json:"email_convidado"`
	At         *time.Time `json:"data"`
}

// Validate implements Validator.
func (c CheckOutRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(c.GuestEmail)
	if email == "" {
		errs = append(errs, "email_convidado is required")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "email_convidado must be a valid email address")
	}
	return errs
}

// CheckInRecordsSuccessResponse is the success response envelope for the
// check-in, check-out, and guest-records endpoints (200/201).
type CheckInRecordsSuccessResponse struct {
	Data  *domain.CheckInRecords `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// PresenceSuccessResponse is the success response envelope for GET /eventos/{eventID}/presentes (200).
type PresenceSuccessResponse struct {
	Data  *domain.PresenceReport `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// GenerateReportResponse is the data payload for POST /eventos/{eventID}/relatorio (200).
type GenerateReportResponse struct {
	File string `json:"arquivo"`
}

// GenerateReportSuccessResponse is the success response envelope for POST /eventos/{eventID}/relatorio (200).
type GenerateReportSuccessResponse struct {
	Data  GenerateReportResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewAttendanceController(logger *slog.Logger, svc domain.EventService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// CheckIn godoc
// @Summary Check a guest in
// @Description Opens a check-in record for the guest. Rejects a second check-in while one is still open. With porcentagem_presenca (0 < p <= 1) the event must be FINALIZADO and a synthetic check-in/check-out pair covering that fraction of the event duration is recorded instead.
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Param body body CheckInRequest true "Guest email, optional timestamp, optional attendance fraction"
// @Success 201 {object} controllers.CheckInRecordsSuccessResponse "data contains the guest's full record list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or guest)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (open record exists)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID}/check-in [post]
func (c *AttendanceController) CheckIn(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	records, err := c.Service.CheckIn(r.Context(), eventID, strings.TrimSpace(req.GuestEmail), req.At, req.AttendancePercent)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, records)
}

// CheckOut godoc
// @Summary Check a guest out
// @Description Closes the guest's open check-in record. Rejects when the guest never checked in or the latest record is already closed.
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Param body body CheckOutRequest true "Guest email and optional timestamp"
// @Success 200 {object} controllers.CheckInRecordsSuccessResponse "data contains the guest's full record list"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or guest)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (no open record)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID}/check-out [post]
func (c *AttendanceController) CheckOut(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req CheckOutRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	records, err := c.Service.CheckOut(r.Context(), eventID, strings.TrimSpace(req.GuestEmail), req.At)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}

// GetCheckInRecords godoc
// @Summary List a guest's check-in records
// @Description Returns the ordered check-in record list for a guest of the event.
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Param email path string true "Guest email"
// @Success 200 {object} controllers.CheckInRecordsSuccessResponse "data contains registros"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event or guest)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID}/convidados/{email}/registros [get]
func (c *AttendanceController) GetCheckInRecords(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	email := r.PathValue("email")
	if eventID == "" || email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or email")
		return
	}
	records, err := c.Service.GetCheckInRecords(r.Context(), eventID, email)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}

// GetPresentAbsent godoc
// @Summary List present and absent guests
// @Description For a FINALIZADO event, returns the guests that attended (with total permanence as <h>h<m>m, sorted by email) and the invited guests that never checked in (invitation order).
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Success 200 {object} controllers.PresenceSuccessResponse "data contains presentes and ausentes"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event not finalized)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID}/presentes [get]
func (c *AttendanceController) GetPresentAbsent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	report, err := c.Service.GetPresentAbsent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// GenerateReport godoc
// @Summary Generate the attendance spreadsheet
// @Description For a FINALIZADO event, writes the attendance spreadsheet (one row per guest, padded check-in/check-out column pairs, trailing permanence column) and emails the organizer a notification (best effort). Returns the artifact reference.
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Success 200 {object} controllers.GenerateReportSuccessResponse "data contains arquivo"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (event not finalized)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID}/relatorio [post]
func (c *AttendanceController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	file, err := c.Service.GenerateReport(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GenerateReportResponse{File: file})
}
