package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/delivery/http/middleware"
	"eventcheckin/internal/domain"
)

// CreateEventRequest is the request body for POST /eventos. The wire fields
// follow the persisted column names.
type CreateEventRequest struct {
	Name              string    `json:"nome"`
	Description       string    `json:"descricao"`
	ExpectedStart     time.Time `json:"dt_inicio_prevista"`
	ExpectedEnd       time.Time `json:"dt_fim_prevista"`
	Location          string    `json:"local"`
	OrganizerCPF      string    `json:"cpf_organizador"`
	Latitude          *string   `json:"latitude"`
	Longitude         *string   `json:"longitude"`
	MaxDistanceMeters *int      `json:"distancia_maxima_permitida"`
	ToleranceMinutes  *int      `json:"minutos_tolerancia"`
	GuestEmails       []string  `json:"convidados"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "nome is required")
	}
	if c.ExpectedStart.IsZero() {
		errs = append(errs, "dt_inicio_prevista is required")
	}
	if c.ExpectedEnd.IsZero() {
		errs = append(errs, "dt_fim_prevista is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "local is required")
	}
	if c.OrganizerCPF != "" && !cpfRegex.MatchString(c.OrganizerCPF) {
		errs = append(errs, "cpf_organizador must be a valid CPF")
	}
	for _, email := range c.GuestEmails {
		if !emailRegex.MatchString(strings.TrimSpace(email)) {
			errs = append(errs, "convidados contains an invalid email: "+email)
		}
	}
	return errs
}

// CreateEventSuccessResponse is the success response envelope for POST /eventos (201).
type CreateEventSuccessResponse struct {
	Data  *domain.EventView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateEventRequest is the request body for PATCH /eventos/{eventID}. All
// fields are optional; omitted fields are unchanged. A non-nil convidados
// replaces the whole guest list and resets the replaced guests' check-in
// history.
type UpdateEventRequest struct {
	Name              *string    `json:"nome"`
	Description       *string    `json:"descricao"`
	ExpectedStart     *time.Time `json:"dt_inicio_prevista"`
	ExpectedEnd       *time.Time `json:"dt_fim_prevista"`
	ActualStart       *time.Time `json:"dt_inicio"`
	ActualEnd         *time.Time `json:"dt_fim"`
	Location          *string    `json:"local"`
	Latitude          *string    `json:"latitude"`
	Longitude         *string    `json:"longitude"`
	MaxDistanceMeters *int       `json:"distancia_maxima_permitida"`
	ToleranceMinutes  *int       `json:"minutos_tolerancia"`
	Status            *string    `json:"status"`
	GuestEmails       []string   `json:"convidados"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "nome cannot be empty")
	}
	if u.Location != nil && strings.TrimSpace(*u.Location) == "" {
		errs = append(errs, "local cannot be empty")
	}
	for _, email := range u.GuestEmails {
		if !emailRegex.MatchString(strings.TrimSpace(email)) {
			errs = append(errs, "convidados contains an invalid email: "+email)
		}
	}
	return errs
}

// UpdateEventSuccessResponse is the success response envelope for PATCH /eventos/{eventID} (200).
type UpdateEventSuccessResponse struct {
	Data  *domain.EventView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /eventos/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.EventView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// FindEventsSuccessResponse is the success response envelope for GET /eventos (200).
type FindEventsSuccessResponse struct {
	Data  *domain.EventPage `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteEventResponse is the data payload for DELETE /eventos/{eventID} (200).
type DeleteEventResponse struct {
	Status string `json:"status"`
}

// DeleteEventSuccessResponse is the success response envelope for DELETE /eventos/{eventID} (200).
type DeleteEventSuccessResponse struct {
	Data  DeleteEventResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GuestListSuccessResponse is the success response envelope for GET /eventos/convidados (200).
type GuestListSuccessResponse struct {
	Data  *domain.GuestList `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with status PENDENTE and invites the listed guests. When cpf_organizador is omitted, the authenticated user's CPF is used. Guests receive an invitation email (best effort).
// @Tags eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event with aggregates"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (organizer CPF unknown)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	organizerCPF := strings.TrimSpace(req.OrganizerCPF)
	if organizerCPF == "" {
		cpf, ok := middleware.UserCPFFromContext(r.Context())
		if !ok {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
			return
		}
		organizerCPF = cpf
	}
	draft := &domain.EventDraft{
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		ExpectedStart:     req.ExpectedStart,
		ExpectedEnd:       req.ExpectedEnd,
		Location:          req.Location,
		OrganizerCPF:      organizerCPF,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		MaxDistanceMeters: req.MaxDistanceMeters,
		ToleranceMinutes:  req.ToleranceMinutes,
		GuestEmails:       req.GuestEmails,
	}
	view, err := c.Service.Create(r.Context(), draft)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, view)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns the event with its guest, check-in, and check-out aggregates. Aggregates are recomputed on every read.
// @Tags eventos
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event with aggregates"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	view, err := c.Service.GetByID(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// FindEvents godoc
// @Summary Search events
// @Description Searches events by status (comma-separated), nome (substring), cpf_convidado, cpf_organizador, with optional pagina/limite pagination. At least one parameter is required. Name and status conditions are combined with AND; the guest and organizer CPF conditions join that group with OR.
// @Tags eventos
// @Produce json
// @Security BearerAuth
// @Param status query string false "Statuses, comma separated (e.g. PENDENTE,EM ANDAMENTO)"
// @Param nome query string false "Name substring, case-insensitive"
// @Param cpf_convidado query string false "Guest CPF, resolved to the guest's email"
// @Param cpf_organizador query string false "Organizer CPF"
// @Param pagina query string false "Page number (1-based, requires limite)"
// @Param limite query string false "Page size (requires pagina)"
// @Success 200 {object} controllers.FindEventsSuccessResponse "data contains eventos and paginacao"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos [get]
func (c *EventController) FindEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := &domain.EventQuery{
		Status:       q.Get("status"),
		Name:         q.Get("nome"),
		GuestCPF:     q.Get("cpf_convidado"),
		OrganizerCPF: q.Get("cpf_organizador"),
		Page:         q.Get("pagina"),
		Limit:        q.Get("limite"),
	}
	page, err := c.Service.Find(r.Context(), query)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Sparse update of event fields, guest list, and lifecycle status. Status transitions follow PENDENTE -> EM_ANDAMENTO <-> PAUSADO -> FINALIZADO | CANCELADO; terminal events reject further status changes. Starting an event from PENDENTE requires latitude and longitude. Status changes trigger guest notification emails (best effort).
// @Tags eventos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.UpdateEventSuccessResponse "data contains the updated event with aggregates"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (invalid transition)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := &domain.EventPatch{
		Name:              req.Name,
		Description:       req.Description,
		ExpectedStart:     req.ExpectedStart,
		ExpectedEnd:       req.ExpectedEnd,
		ActualStart:       req.ActualStart,
		ActualEnd:         req.ActualEnd,
		Location:          req.Location,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		MaxDistanceMeters: req.MaxDistanceMeters,
		ToleranceMinutes:  req.ToleranceMinutes,
		Status:            req.Status,
		GuestEmails:       req.GuestEmails,
	}
	view, err := c.Service.Update(r.Context(), eventID, patch)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes an event and its guest list.
// @Tags eventos
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (ULID)"
// @Success 200 {object} controllers.DeleteEventSuccessResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.Delete(r.Context(), eventID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Status: "deleted"})
}

// GuestListByEventName godoc
// @Summary List guests of an event by name
// @Description Returns the guest aggregate of the most recently created event whose name contains the given substring (case-insensitive).
// @Tags eventos
// @Produce json
// @Security BearerAuth
// @Param nome query string true "Event name substring"
// @Success 200 {object} controllers.GuestListSuccessResponse "data contains nome and convidados"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /eventos/convidados [get]
func (c *EventController) GuestListByEventName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("nome")
	list, err := c.Service.GuestListByEventName(r.Context(), name)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}
