package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the
// given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// GuestInvitationEmailData holds data for the invitation email sent to every
// guest when an event is created.
type GuestInvitationEmailData struct {
	EventName     string
	Location      string
	When          time.Time
	Description   string
	OrganizerName string
	Recipients    []string
}

// StatusChangeEmailData holds data for the notification sent when an event
// changes status. PermanenceMinutes is set only for FINALIZADO notifications
// addressed to a single checked-in guest.
type StatusChangeEmailData struct {
	NewStatus         string
	EventName         string
	Location          string
	When              time.Time
	Recipients        []string
	PermanenceMinutes *int64
}

// EventReportEmailData holds data for the report email sent to the organizer,
// pointing at the generated artifact.
type EventReportEmailData struct {
	EventName      string
	When           time.Time
	OrganizerEmail string
	ArtifactRef    string
}

// EmailService defines the contract for sending domain-level emails. All
// sends are best-effort: callers fire them after state is committed and drop
// the error.
type EmailService interface {
	SendGuestInvitation(ctx context.Context, data *GuestInvitationEmailData) error
	SendStatusChange(ctx context.Context, data *StatusChangeEmailData) error
	SendEventReport(ctx context.Context, data *EventReportEmailData) error
}
