package domain

import (
	"context"
	"time"
)

// CheckInRecord is one attendance window for a guest. A record is "open" while
// it has a check-in time but no check-out time.
// swagger:model CheckInRecord
type CheckInRecord struct {
	ID       string     `json:"id"`
	CheckIn  *time.Time `json:"dt_hora_check_in"`
	CheckOut *time.Time `json:"dt_hora_check_out"`
}

// Open reports whether the record has a check-in and no check-out yet.
func (r CheckInRecord) Open() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}

// Closed reports whether the record has both timestamps set.
func (r CheckInRecord) Closed() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}

// Guest is an invitee scoped to a single event, identified by
// (event id, email). Its record list is persisted as a whole on every write.
type Guest struct {
	EventID   string          `json:"id_evento"`
	Email     string          `json:"email_convidado"`
	Records   []CheckInRecord `json:"check_ins"`
	CreatedAt time.Time       `json:"dt_criacao"`
	UpdatedAt time.Time       `json:"dt_ult_atualizacao"`
}

// CheckInRecords is the full ordered record list of one guest, as returned by
// check-in, check-out and the records lookup.
// swagger:model CheckInRecords
type CheckInRecords struct {
	Records []CheckInRecord `json:"registros"`
}

// PresentGuest is one attendee in the presence report, with the formatted
// permanence ("<hours>h<minutes>m") summed over closed records.
type PresentGuest struct {
	Email      string `json:"email"`
	Permanence string `json:"permanencia"`
}

// PresenceReport lists who attended a finished event and who did not.
// Present is sorted by email; Absent keeps the invitation order.
// swagger:model PresenceReport
type PresenceReport struct {
	Present []PresentGuest `json:"presentes"`
	Absent  []string       `json:"ausentes"`
}

// GuestRepository defines storage operations for event guests. ReplaceRecords
// writes the whole record list back (last writer wins; the store serializes
// writes to the same guest row).
type GuestRepository interface {
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*Guest, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Guest, error)
	ReplaceRecords(ctx context.Context, eventID, email string, records []CheckInRecord) error
}
