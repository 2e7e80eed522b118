package services

import (
	"context"
	"fmt"

	"eventcheckin/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendGuestInvitation sends the "convite" email to every guest of a freshly
// created event.
func (s *emailService) SendGuestInvitation(ctx context.Context, data *domain.GuestInvitationEmailData) error {
	if data == nil {
		return fmt.Errorf("invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("convite", data)
	if err != nil {
		return fmt.Errorf("render convite template: %w", err)
	}
	return s.sendAll(data.Recipients, subject, htmlBody, textBody)
}

// SendStatusChange sends the "status_evento" email to the given recipients.
func (s *emailService) SendStatusChange(ctx context.Context, data *domain.StatusChangeEmailData) error {
	if data == nil {
		return fmt.Errorf("status change data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("status_evento", data)
	if err != nil {
		return fmt.Errorf("render status_evento template: %w", err)
	}
	return s.sendAll(data.Recipients, subject, htmlBody, textBody)
}

// SendEventReport mails the organizer the reference to a generated report.
func (s *emailService) SendEventReport(ctx context.Context, data *domain.EventReportEmailData) error {
	if data == nil {
		return fmt.Errorf("report data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("relatorio", data)
	if err != nil {
		return fmt.Errorf("render relatorio template: %w", err)
	}
	return s.sendAll([]string{data.OrganizerEmail}, subject, htmlBody, textBody)
}

// sendAll delivers to each recipient individually so one bad address does not
// block the rest; the first failure is reported after all sends are attempted.
func (s *emailService) sendAll(recipients []string, subject, htmlBody, textBody string) error {
	var firstErr error
	for _, to := range recipients {
		if to == "" {
			continue
		}
		if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("send to %s: %w", to, err)
		}
	}
	return firstErr
}
