package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"eventcheckin/internal/domain"
)

// permanence sums the spans of all closed records.
func permanence(records []domain.CheckInRecord) time.Duration {
	var total time.Duration
	for _, r := range records {
		if r.Closed() {
			total += r.CheckOut.Sub(*r.CheckIn)
		}
	}
	return total
}

// formatPermanence renders a duration as "<hours>h<minutes>m", truncating to
// whole minutes.
func formatPermanence(d time.Duration) string {
	totalMinutes := int(d / time.Minute)
	return fmt.Sprintf("%dh%dm", totalMinutes/60, totalMinutes%60)
}

func (s *eventService) GetPresentAbsent(ctx context.Context, eventID string) (*domain.PresenceReport, error) {
	if eventID == "" {
		return nil, domain.Invalid("Informe o ID do evento para realizar a busca dos presentes")
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.StatusFinalizado {
		return nil, domain.Conflict("Não é possível visualizar os presentes de um evento não finalizado")
	}

	guests, err := s.guests.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	present := make([]domain.PresentGuest, 0)
	attended := make(map[string]struct{})
	for _, g := range guests {
		if len(g.Records) == 0 {
			continue
		}
		attended[g.Email] = struct{}{}
		present = append(present, domain.PresentGuest{
			Email:      g.Email,
			Permanence: formatPermanence(permanence(g.Records)),
		})
	}
	sort.Slice(present, func(i, j int) bool { return present[i].Email < present[j].Email })

	// Absent keeps the invitation order.
	absent := make([]string, 0)
	for _, email := range event.Guests.Emails {
		if _, ok := attended[email]; !ok {
			absent = append(absent, email)
		}
	}

	return &domain.PresenceReport{Present: present, Absent: absent}, nil
}

// reportRows builds the spreadsheet rows: a header sized to the guest with the
// most check-in cycles, one row per guest with at least one record, blank
// cells padding shorter histories, and a trailing permanence column.
func reportRows(guests []*domain.Guest) [][]string {
	maxCycles := 0
	attended := make([]*domain.Guest, 0, len(guests))
	for _, g := range guests {
		if len(g.Records) == 0 {
			continue
		}
		attended = append(attended, g)
		if len(g.Records) > maxCycles {
			maxCycles = len(g.Records)
		}
	}

	header := []string{"Email"}
	for i := 1; i <= maxCycles; i++ {
		header = append(header, fmt.Sprintf("Check-in %d", i), fmt.Sprintf("Check-out %d", i))
	}
	header = append(header, "Tempo de Permanência")

	rows := [][]string{header}
	for _, g := range attended {
		row := []string{g.Email}
		for _, r := range g.Records {
			row = append(row, formatRecordTime(r.CheckIn), formatRecordTime(r.CheckOut))
		}
		for len(row) < len(header)-1 {
			row = append(row, "", "")
		}
		row = append(row, formatPermanence(permanence(g.Records)))
		rows = append(rows, row)
	}
	return rows
}

func formatRecordTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func (s *eventService) GenerateReport(ctx context.Context, eventID string) (string, error) {
	if eventID == "" {
		return "", domain.Invalid("Informe o ID do evento para gerar o relatório")
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return "", err
	}
	if event.Status != domain.StatusFinalizado {
		return "", domain.Conflict("Não é possível gerar um relatório de um evento que não foi finalizado")
	}

	guests, err := s.guests.ListByEventID(ctx, eventID)
	if err != nil {
		return "", fmt.Errorf("list guests: %w", err)
	}

	artifact, err := s.reports.Write(ctx, "relatorio_"+eventID, reportRows(guests))
	if err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	// Notify the organizer with the artifact reference. Best-effort: the
	// report already exists at this point.
	if organizer, lookupErr := s.users.FindByCPF(ctx, event.OrganizerCPF); lookupErr == nil && organizer != nil {
		data := &domain.EventReportEmailData{
			EventName:      event.Name,
			When:           event.ExpectedStart,
			OrganizerEmail: organizer.Email,
			ArtifactRef:    artifact,
		}
		if sendErr := s.email.SendEventReport(ctx, data); sendErr != nil {
			s.logger.Warn("report email failed", "event_id", eventID, "err", sendErr)
		}
	}

	return artifact, nil
}
