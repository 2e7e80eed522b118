package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"eventcheckin/internal/domain"
)

type eventService struct {
	events  domain.EventRepository
	guests  domain.GuestRepository
	users   domain.UserLookup
	email   domain.EmailService
	reports domain.ReportSink
	logger  *slog.Logger
}

// NewEventService wires the event service with its collaborators.
func NewEventService(
	events domain.EventRepository,
	guests domain.GuestRepository,
	users domain.UserLookup,
	email domain.EmailService,
	reports domain.ReportSink,
	logger *slog.Logger,
) domain.EventService {
	return &eventService{
		events:  events,
		guests:  guests,
		users:   users,
		email:   email,
		reports: reports,
		logger:  logger,
	}
}

func (s *eventService) Create(ctx context.Context, draft *domain.EventDraft) (*domain.EventView, error) {
	organizer, err := s.users.FindByCPF(ctx, draft.OrganizerCPF)
	if err != nil {
		return nil, fmt.Errorf("find organizer: %w", err)
	}
	if organizer == nil {
		return nil, domain.NotFound("Usuário não encontrado com o CPF informado: " + draft.OrganizerCPF)
	}

	created, err := s.events.Save(ctx, draft, ulid.Make().String(), time.Now())
	if err != nil {
		return nil, err
	}

	if len(created.Guests.Emails) > 0 {
		data := &domain.GuestInvitationEmailData{
			EventName:     created.Name,
			Location:      created.Location,
			When:          created.ExpectedStart,
			Description:   created.Description,
			OrganizerName: organizer.Name,
			Recipients:    created.Guests.Emails,
		}
		if sendErr := s.email.SendGuestInvitation(ctx, data); sendErr != nil {
			s.logger.Warn("invitation email failed", "event_id", created.ID, "err", sendErr)
		}
	}

	return created, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.EventView, error) {
	if id == "" {
		return nil, domain.Invalid("Informe o ID do evento para realizar a busca")
	}
	return s.events.FindByID(ctx, id)
}

func (s *eventService) Update(ctx context.Context, id string, patch *domain.EventPatch) (*domain.EventView, error) {
	if id == "" {
		return nil, domain.Invalid("Informe o ID do evento para realizar a atualização")
	}
	if patch.ActualStart != nil && patch.ActualEnd != nil {
		if patch.ActualEnd.Before(*patch.ActualStart) {
			return nil, domain.Invalid("Data de fim do evento não pode ser menor que a data de início")
		}
		if patch.ActualEnd.Equal(*patch.ActualStart) {
			return nil, domain.Invalid("Data de início e fim do evento não podem ser iguais")
		}
	}

	current, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newStatus *domain.EventStatus
	if patch.Status != nil {
		target, err := domain.ParseEventStatus(*patch.Status)
		if err != nil {
			return nil, err
		}
		hasCoordinates := patch.Latitude != nil && patch.Longitude != nil
		if err := validateTransition(current.Status, target, hasCoordinates); err != nil {
			return nil, err
		}
		now := time.Now()
		if startsEvent(current.Status, target) {
			patch.ActualStart = &now
		}
		if finishesEvent(target) {
			patch.ActualEnd = &now
		}
		newStatus = &target
	}

	updated, err := s.events.Update(ctx, id, patch, newStatus)
	if err != nil {
		return nil, err
	}

	if newStatus != nil && *newStatus != current.Status {
		s.notifyStatusChange(ctx, current, updated)
	}

	return updated, nil
}

// notifyStatusChange fires the notifications for a committed status change.
// Failures are logged and dropped: the state change is already persisted and
// must not be affected by the mail channel.
func (s *eventService) notifyStatusChange(ctx context.Context, before, after *domain.EventView) {
	switch {
	case after.Status == domain.StatusEmAndamento && before.Status == domain.StatusPendente:
		s.sendStatusMail(ctx, after, "INICIADO", after.Guests.Emails, nil)

	case after.Status == domain.StatusFinalizado:
		s.notifyFinished(ctx, before, after)

	case after.Status == domain.StatusCancelado:
		s.sendStatusMail(ctx, after, "CANCELADO", after.Guests.Emails, nil)

	case after.Status == domain.StatusPausado:
		s.sendStatusMail(ctx, after, "PAUSADO", after.Guests.Emails, nil)

	case after.Status == domain.StatusEmAndamento && before.Status == domain.StatusPausado:
		s.sendStatusMail(ctx, after, "RETOMADO", after.Guests.Emails, nil)
	}
}

// notifyFinished force-closes any open record of each checked-in guest and
// mails that guest its permanence. Guests without a single check-in record
// receive nothing.
func (s *eventService) notifyFinished(ctx context.Context, before, after *domain.EventView) {
	now := time.Now()
	for _, email := range before.CheckIns.Emails {
		guest, err := s.guests.GetByEventAndEmail(ctx, after.ID, email)
		if err != nil {
			s.logger.Warn("finish notification skipped", "event_id", after.ID, "guest", email, "err", err)
			continue
		}
		if len(guest.Records) == 0 {
			continue
		}

		var permanenceMinutes int64
		if open := findOpenRecord(guest.Records); open != nil {
			permanenceMinutes = int64(now.Sub(*open.CheckIn) / time.Minute)
			records, err := closeRecord(guest.Records, open.ID, now)
			if err == nil {
				err = s.guests.ReplaceRecords(ctx, after.ID, email, records)
			}
			if err != nil {
				s.logger.Warn("forced check-out failed", "event_id", after.ID, "guest", email, "err", err)
				continue
			}
		}
		s.sendStatusMail(ctx, after, "FINALIZADO", []string{email}, &permanenceMinutes)
	}
}

func (s *eventService) sendStatusMail(ctx context.Context, event *domain.EventView, status string, recipients []string, permanenceMinutes *int64) {
	if len(recipients) == 0 {
		return
	}
	data := &domain.StatusChangeEmailData{
		NewStatus:         status,
		EventName:         event.Name,
		Location:          event.Location,
		When:              time.Now(),
		Recipients:        recipients,
		PermanenceMinutes: permanenceMinutes,
	}
	if err := s.email.SendStatusChange(ctx, data); err != nil {
		s.logger.Warn("status email failed", "event_id", event.ID, "status", status, "err", err)
	}
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.Invalid("Informe o ID do evento para realizar a exclusão")
	}
	return s.events.Remove(ctx, id)
}

func (s *eventService) Find(ctx context.Context, query *domain.EventQuery) (*domain.EventPage, error) {
	if query.Status == "" && query.Name == "" && query.Page == "" && query.Limit == "" &&
		query.GuestCPF == "" && query.OrganizerCPF == "" {
		return nil, domain.Invalid("Informe ao menos um parâmetro para a busca: status, nome ou pagina e limite!")
	}

	filter := &domain.EventFilter{
		Name:         strings.TrimSpace(query.Name),
		OrganizerCPF: strings.TrimSpace(query.OrganizerCPF),
	}

	if query.Status != "" {
		for _, token := range strings.Split(query.Status, ",") {
			status, err := domain.ParseEventStatus(token)
			if err != nil {
				return nil, err
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if query.Page != "" {
		page, err := strconv.Atoi(strings.TrimSpace(query.Page))
		if err != nil || page <= 0 {
			return nil, domain.Invalid("Página informada não é um número válido")
		}
		filter.Page = page
	}
	if query.Limit != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(query.Limit))
		if err != nil || limit <= 0 {
			return nil, domain.Invalid("Limite informado não é um número válido")
		}
		filter.Limit = limit
	}
	if query.Page != "" && query.Limit == "" {
		return nil, domain.Invalid("Informe o parâmetro limite para a paginação")
	}
	if query.Limit != "" && query.Page == "" {
		return nil, domain.Invalid("Informe o parâmetro pagina para a paginação")
	}

	if cpf := strings.TrimSpace(query.GuestCPF); cpf != "" {
		guest, err := s.users.FindByCPF(ctx, cpf)
		if err != nil {
			return nil, fmt.Errorf("find guest by cpf: %w", err)
		}
		if guest == nil {
			// An unknown guest CPF matches nothing instead of erroring.
			filter.GuestUnresolved = true
		} else {
			filter.GuestEmail = guest.Email
		}
	}

	return s.events.Find(ctx, filter)
}

func (s *eventService) GuestListByEventName(ctx context.Context, name string) (*domain.GuestList, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Invalid("Informe o nome do evento para realizar a busca dos convidados")
	}
	list, err := s.events.GuestListByEventName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("guest list by event name: %w", err)
	}
	return list, nil
}
