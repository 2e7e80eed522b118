package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"eventcheckin/internal/domain"
)

// findOpenRecord returns the record with a check-in and no check-out, or nil.
// The record list invariant guarantees at most one such record.
func findOpenRecord(records []domain.CheckInRecord) *domain.CheckInRecord {
	for i := range records {
		if records[i].Open() {
			return &records[i]
		}
	}
	return nil
}

// appendRecord appends a new attendance record. An open record is rejected
// while another open record exists; a closed record (checkOut supplied) is
// always accepted.
func appendRecord(records []domain.CheckInRecord, checkIn time.Time, checkOut *time.Time) ([]domain.CheckInRecord, error) {
	if checkOut == nil && findOpenRecord(records) != nil {
		return nil, domain.Conflict("Check-in já realizado para esse convidado")
	}
	in := checkIn
	return append(records, domain.CheckInRecord{
		ID:       ulid.Make().String(),
		CheckIn:  &in,
		CheckOut: checkOut,
	}), nil
}

// closeRecord sets the check-out time of the record with the given id.
func closeRecord(records []domain.CheckInRecord, recordID string, at time.Time) ([]domain.CheckInRecord, error) {
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		if records[i].CheckOut != nil {
			return nil, domain.Conflict("Check-out já realizado para esse convidado")
		}
		out := at
		records[i].CheckOut = &out
		return records, nil
	}
	return nil, domain.NotFound("Registro de check-in não encontrado para esse convidado")
}

func (s *eventService) CheckIn(ctx context.Context, eventID, guestEmail string, at *time.Time, attendancePercent *float64) (*domain.CheckInRecords, error) {
	if eventID == "" {
		return nil, domain.Invalid("Informe o ID do evento para realizar o check-in")
	}
	if guestEmail == "" {
		return nil, domain.Invalid("Informe o e-mail do usuário para realizar o check-in")
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guest, err := s.guests.GetByEventAndEmail(ctx, eventID, guestEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Convidado não encontrado nesse evento para realizar o check-in")
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}

	if findOpenRecord(guest.Records) != nil {
		return nil, domain.Conflict("Check-in já realizado para esse convidado")
	}

	var records []domain.CheckInRecord
	if attendancePercent != nil {
		records, err = synthesizeAttendance(guest.Records, event, *attendancePercent)
	} else {
		checkIn := time.Now()
		if at != nil {
			checkIn = *at
		}
		records, err = appendRecord(guest.Records, checkIn, nil)
	}
	if err != nil {
		return nil, err
	}

	if err := s.guests.ReplaceRecords(ctx, eventID, guestEmail, records); err != nil {
		return nil, fmt.Errorf("replace check-in records: %w", err)
	}
	return &domain.CheckInRecords{Records: records}, nil
}

// synthesizeAttendance backfills a closed record proportional to the event's
// real duration: check-in at the actual start, check-out after
// percent * (actual end - actual start). Only finished events qualify.
func synthesizeAttendance(records []domain.CheckInRecord, event *domain.EventView, percent float64) ([]domain.CheckInRecord, error) {
	if percent <= 0 || percent > 1 {
		return nil, domain.Invalid("Porcentagem de presença deve ser maior que 0 e no máximo 1")
	}
	if event.Status != domain.StatusFinalizado || event.ActualStart == nil || event.ActualEnd == nil {
		return nil, domain.NotFound("Evento não encontrado, ou não está finalizado")
	}
	stay := time.Duration(float64(event.ActualEnd.Sub(*event.ActualStart)) * percent)
	checkOut := event.ActualStart.Add(stay)
	return appendRecord(records, *event.ActualStart, &checkOut)
}

func (s *eventService) CheckOut(ctx context.Context, eventID, guestEmail string, at *time.Time) (*domain.CheckInRecords, error) {
	if eventID == "" {
		return nil, domain.Invalid("Informe o ID do evento para realizar o check-out")
	}
	if guestEmail == "" {
		return nil, domain.Invalid("Informe o e-mail do usuário para realizar o check-out")
	}

	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	guest, err := s.guests.GetByEventAndEmail(ctx, eventID, guestEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Convidado não encontrado nesse evento para realizar o check-out")
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}

	if len(guest.Records) == 0 {
		return nil, domain.Conflict("Check-in não realizado para esse convidado")
	}

	open := findOpenRecord(guest.Records)
	if open == nil {
		return nil, domain.Conflict("Check-out já realizado para esse convidado")
	}

	checkOut := time.Now()
	if at != nil {
		checkOut = *at
	}
	records, err := closeRecord(guest.Records, open.ID, checkOut)
	if err != nil {
		return nil, err
	}

	if err := s.guests.ReplaceRecords(ctx, eventID, guestEmail, records); err != nil {
		return nil, fmt.Errorf("replace check-in records: %w", err)
	}
	return &domain.CheckInRecords{Records: records}, nil
}

func (s *eventService) GetCheckInRecords(ctx context.Context, eventID, guestEmail string) (*domain.CheckInRecords, error) {
	if eventID == "" {
		return nil, domain.Invalid("Informe o ID do evento para realizar a busca dos registros de check-in")
	}
	if guestEmail == "" {
		return nil, domain.Invalid("Informe o e-mail do usuário para realizar a busca dos registros de check-in")
	}

	guest, err := s.guests.GetByEventAndEmail(ctx, eventID, guestEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Convidado não encontrado nesse evento")
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return &domain.CheckInRecords{Records: guest.Records}, nil
}
