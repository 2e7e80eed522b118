package domain

import (
	"context"
	"strings"
	"time"
)

// EventStatus is the lifecycle status of an event. The values are stored and
// exposed on the wire as-is.
type EventStatus string

const (
	StatusPendente    EventStatus = "PENDENTE"
	StatusEmAndamento EventStatus = "EM_ANDAMENTO"
	StatusPausado     EventStatus = "PAUSADO"
	StatusFinalizado  EventStatus = "FINALIZADO"
	StatusCancelado   EventStatus = "CANCELADO"
)

// EventStatuses lists every valid status, in lifecycle order.
var EventStatuses = []EventStatus{
	StatusPendente,
	StatusEmAndamento,
	StatusPausado,
	StatusFinalizado,
	StatusCancelado,
}

// ParseEventStatus parses s (case-insensitive, trimmed, spaces accepted in
// place of underscores) into an EventStatus.
func ParseEventStatus(s string) (EventStatus, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), " ", "_")
	for _, st := range EventStatuses {
		if string(st) == normalized {
			return st, nil
		}
	}
	return "", Invalid("Status informado não é válido, utilize: PENDENTE, EM ANDAMENTO, PAUSADO, FINALIZADO ou CANCELADO")
}

// Terminal reports whether no further status change is allowed.
func (s EventStatus) Terminal() bool {
	return s == StatusFinalizado || s == StatusCancelado
}

// Event holds the persisted attributes of an event. Latitude and longitude are
// free-form strings as provided by the client (the geofencing anchor).
// swagger:model Event
type Event struct {
	ID                string      `json:"id"`
	Name              string      `json:"nome"`
	Description       string      `json:"descricao"`
	ExpectedStart     time.Time   `json:"dt_inicio_prevista"`
	ExpectedEnd       time.Time   `json:"dt_fim_prevista"`
	ActualStart       *time.Time  `json:"dt_inicio"`
	ActualEnd         *time.Time  `json:"dt_fim"`
	Location          string      `json:"local"`
	OrganizerCPF      string      `json:"cpf_organizador"`
	Latitude          *string     `json:"latitude"`
	Longitude         *string     `json:"longitude"`
	MaxDistanceMeters *int        `json:"distancia_maxima_permitida,omitempty"`
	ToleranceMinutes  *int        `json:"minutos_tolerancia,omitempty"`
	Status            EventStatus `json:"status"`
	CreatedAt         time.Time   `json:"dt_criacao"`
	UpdatedAt         time.Time   `json:"dt_ult_atualizacao"`
}

// EmailSummary is a count plus the set of emails behind it.
type EmailSummary struct {
	Total  int      `json:"total"`
	Emails []string `json:"emails"`
}

// EventView is an event enriched with guest and attendance aggregates.
// Aggregates are recomputed on every read, never cached.
// swagger:model EventView
type EventView struct {
	Event
	Guests    EmailSummary `json:"convidados"`
	CheckIns  EmailSummary `json:"check_ins"`
	CheckOuts EmailSummary `json:"check_outs"`
}

// EventDraft carries the fields accepted when creating an event.
type EventDraft struct {
	Name              string
	Description       string
	ExpectedStart     time.Time
	ExpectedEnd       time.Time
	Location          string
	OrganizerCPF      string
	Latitude          *string
	Longitude         *string
	MaxDistanceMeters *int
	ToleranceMinutes  *int
	GuestEmails       []string
}

// EventPatch is a sparse update: nil fields are left untouched. GuestEmails
// nil keeps the current guest list; non-nil replaces it (and resets the
// replaced guests' check-in history). Status carries the raw client string;
// the service parses it before persisting.
type EventPatch struct {
	Name              *string
	Description       *string
	ExpectedStart     *time.Time
	ExpectedEnd       *time.Time
	Location          *string
	Latitude          *string
	Longitude         *string
	MaxDistanceMeters *int
	ToleranceMinutes  *int
	Status            *string
	ActualStart       *time.Time
	ActualEnd         *time.Time
	GuestEmails       []string
}

// EventFilter is the resolved filter handed to the repository. GuestEmail is
// already resolved from a CPF by the service; GuestUnresolved marks a guest
// CPF that matched no user, in which case the guest predicate matches nothing.
type EventFilter struct {
	Statuses        []EventStatus
	Name            string
	GuestEmail      string
	GuestUnresolved bool
	OrganizerCPF    string
	Page            int
	Limit           int
}

// Paginated reports whether both page and limit were supplied.
func (f *EventFilter) Paginated() bool { return f.Page > 0 && f.Limit > 0 }

// PageInfo describes the page returned by Find. Total counts the full
// filtered set, before pagination is applied.
type PageInfo struct {
	Page  int `json:"pagina"`
	Limit int `json:"limite"`
	Total int `json:"total"`
}

// EventPage is a page of enriched events.
// swagger:model EventPage
type EventPage struct {
	Events     []*EventView `json:"eventos"`
	Pagination PageInfo     `json:"paginacao"`
}

// GuestList is the guest aggregate of the most recently created event whose
// name matches a search. Name is nil when the event row has no name stored.
// swagger:model GuestList
type GuestList struct {
	Name   *string      `json:"nome"`
	Guests EmailSummary `json:"convidados"`
}

// EventRepository defines the storage contract for events and their guest
// lists. Save and the guest-list replacement inside Update are transactional.
type EventRepository interface {
	Save(ctx context.Context, draft *EventDraft, id string, now time.Time) (*EventView, error)
	FindByID(ctx context.Context, id string) (*EventView, error)
	Update(ctx context.Context, id string, patch *EventPatch, status *EventStatus) (*EventView, error)
	Remove(ctx context.Context, id string) error
	Find(ctx context.Context, filter *EventFilter) (*EventPage, error)
	GuestListByEventName(ctx context.Context, name string) (*GuestList, error)
}

// EventQuery is the raw search input as received from the client. Page and
// Limit stay strings so validation can report on the original values.
type EventQuery struct {
	Status       string
	Name         string
	GuestCPF     string
	OrganizerCPF string
	Page         string
	Limit        string
}

// EventService defines the event-facing operations.
type EventService interface {
	Create(ctx context.Context, draft *EventDraft) (*EventView, error)
	GetByID(ctx context.Context, id string) (*EventView, error)
	Update(ctx context.Context, id string, patch *EventPatch) (*EventView, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, query *EventQuery) (*EventPage, error)
	CheckIn(ctx context.Context, eventID, guestEmail string, at *time.Time, attendancePercent *float64) (*CheckInRecords, error)
	CheckOut(ctx context.Context, eventID, guestEmail string, at *time.Time) (*CheckInRecords, error)
	GetCheckInRecords(ctx context.Context, eventID, guestEmail string) (*CheckInRecords, error)
	GuestListByEventName(ctx context.Context, name string) (*GuestList, error)
	GetPresentAbsent(ctx context.Context, eventID string) (*PresenceReport, error)
	GenerateReport(ctx context.Context, eventID string) (string, error)
}
