package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"eventcheckin/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a postgres-backed EventRepository.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

const eventColumns = `id, nome, descricao, dt_inicio_prevista, dt_fim_prevista, dt_inicio, dt_fim,
	local, cpf_organizador, latitude, longitude, distancia_maxima_permitida, minutos_tolerancia,
	status, dt_criacao, dt_ult_atualizacao`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var (
		actualStart, actualEnd sql.NullTime
		lat, lng               sql.NullString
		maxDistance, tolerance sql.NullInt64
		status                 string
	)
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.ExpectedStart, &e.ExpectedEnd, &actualStart, &actualEnd,
		&e.Location, &e.OrganizerCPF, &lat, &lng, &maxDistance, &tolerance,
		&status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if actualStart.Valid {
		e.ActualStart = &actualStart.Time
	}
	if actualEnd.Valid {
		e.ActualEnd = &actualEnd.Time
	}
	if lat.Valid {
		e.Latitude = &lat.String
	}
	if lng.Valid {
		e.Longitude = &lng.String
	}
	if maxDistance.Valid {
		v := int(maxDistance.Int64)
		e.MaxDistanceMeters = &v
	}
	if tolerance.Valid {
		v := int(tolerance.Int64)
		e.ToleranceMinutes = &v
	}
	e.Status = domain.EventStatus(status)
	return e, nil
}

func (r *eventRepository) Save(ctx context.Context, draft *domain.EventDraft, id string, now time.Time) (*domain.EventView, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	query := `
		INSERT INTO evento (id, nome, descricao, dt_inicio_prevista, dt_fim_prevista, local,
			cpf_organizador, latitude, longitude, distancia_maxima_permitida, minutos_tolerancia,
			status, dt_criacao, dt_ult_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
	`
	_, err = tx.ExecContext(ctx, query,
		id, draft.Name, draft.Description, draft.ExpectedStart, draft.ExpectedEnd, draft.Location,
		draft.OrganizerCPF, draft.Latitude, draft.Longitude, draft.MaxDistanceMeters, draft.ToleranceMinutes,
		string(domain.StatusPendente), now,
	)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("insert event: %w", err)
	}

	for _, email := range draft.GuestEmails {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO convidado_evento (id_evento, email_convidado, check_ins, dt_criacao, dt_ult_atualizacao)
			VALUES ($1, $2, '[]', $3, $3)
		`, id, email, now)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("insert guest %s: %w", email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	guestEmails := draft.GuestEmails
	if guestEmails == nil {
		guestEmails = []string{}
	}
	return &domain.EventView{
		Event: domain.Event{
			ID:                id,
			Name:              draft.Name,
			Description:       draft.Description,
			ExpectedStart:     draft.ExpectedStart,
			ExpectedEnd:       draft.ExpectedEnd,
			Location:          draft.Location,
			OrganizerCPF:      draft.OrganizerCPF,
			Latitude:          draft.Latitude,
			Longitude:         draft.Longitude,
			MaxDistanceMeters: draft.MaxDistanceMeters,
			ToleranceMinutes:  draft.ToleranceMinutes,
			Status:            domain.StatusPendente,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		Guests:    domain.EmailSummary{Total: len(guestEmails), Emails: guestEmails},
		CheckIns:  domain.EmailSummary{Total: 0, Emails: []string{}},
		CheckOuts: domain.EmailSummary{Total: 0, Emails: []string{}},
	}, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*domain.EventView, error) {
	query := `SELECT ` + eventColumns + ` FROM evento WHERE id = $1`
	event, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Evento não encontrado com o ID informado: " + id)
		}
		return nil, err
	}

	guestsByEvent, err := r.loadGuests(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return buildView(event, guestsByEvent[id]), nil
}

// buildView derives the guest/check-in/check-out aggregates from the guest
// rows. Aggregates are computed on every read, never stored.
func buildView(event *domain.Event, guests []*domain.Guest) *domain.EventView {
	view := &domain.EventView{
		Event:     *event,
		Guests:    domain.EmailSummary{Emails: []string{}},
		CheckIns:  domain.EmailSummary{Emails: []string{}},
		CheckOuts: domain.EmailSummary{Emails: []string{}},
	}
	for _, g := range guests {
		view.Guests.Emails = append(view.Guests.Emails, g.Email)
		checkedIn := false
		checkedOut := false
		for _, rec := range g.Records {
			if rec.CheckIn != nil {
				view.CheckIns.Total++
				checkedIn = true
			}
			if rec.CheckOut != nil {
				view.CheckOuts.Total++
				checkedOut = true
			}
		}
		if checkedIn {
			view.CheckIns.Emails = append(view.CheckIns.Emails, g.Email)
		}
		if checkedOut {
			view.CheckOuts.Emails = append(view.CheckOuts.Emails, g.Email)
		}
	}
	view.Guests.Total = len(view.Guests.Emails)
	return view
}

func (r *eventRepository) loadGuests(ctx context.Context, eventIDs []string) (map[string][]*domain.Guest, error) {
	if len(eventIDs) == 0 {
		return map[string][]*domain.Guest{}, nil
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_evento, email_convidado, check_ins, dt_criacao, dt_ult_atualizacao
		FROM convidado_evento
		WHERE id_evento = ANY($1)
		ORDER BY dt_criacao, email_convidado
	`, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("load guests: %w", err)
	}
	defer rows.Close()

	byEvent := make(map[string][]*domain.Guest)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		byEvent[g.EventID] = append(byEvent[g.EventID], g)
	}
	return byEvent, rows.Err()
}

// replaceGuestList deletes and recreates the guest rows of an event inside
// its own transaction. Replaced guests lose their check-in history. The
// original error is returned untouched so its classification survives.
func (r *eventRepository) replaceGuestList(ctx context.Context, eventID string, emails []string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin guest transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM convidado_evento WHERE id_evento = $1`, eventID); err != nil {
		_ = tx.Rollback()
		return err
	}
	now := time.Now()
	for _, email := range emails {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO convidado_evento (id_evento, email_convidado, check_ins, dt_criacao, dt_ult_atualizacao)
			VALUES ($1, $2, '[]', $3, $3)
		`, eventID, email, now)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *eventRepository) Update(ctx context.Context, id string, patch *domain.EventPatch, status *domain.EventStatus) (*domain.EventView, error) {
	if patch.GuestEmails != nil {
		if err := r.replaceGuestList(ctx, id, patch.GuestEmails); err != nil {
			return nil, err
		}
	}

	setClauses := []string{"dt_ult_atualizacao = NOW()"}
	args := []any{}
	n := 1
	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if patch.Name != nil {
		set("nome", *patch.Name)
	}
	if patch.Description != nil {
		set("descricao", *patch.Description)
	}
	if patch.ExpectedStart != nil {
		set("dt_inicio_prevista", *patch.ExpectedStart)
	}
	if patch.ExpectedEnd != nil {
		set("dt_fim_prevista", *patch.ExpectedEnd)
	}
	if patch.Location != nil {
		set("local", *patch.Location)
	}
	if patch.Latitude != nil {
		set("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		set("longitude", *patch.Longitude)
	}
	if patch.MaxDistanceMeters != nil {
		set("distancia_maxima_permitida", *patch.MaxDistanceMeters)
	}
	if patch.ToleranceMinutes != nil {
		set("minutos_tolerancia", *patch.ToleranceMinutes)
	}
	if status != nil {
		set("status", string(*status))
	}
	if patch.ActualStart != nil {
		set("dt_inicio", *patch.ActualStart)
	}
	if patch.ActualEnd != nil {
		set("dt_fim", *patch.ActualEnd)
	}

	if n > 1 {
		args = append(args, id)
		query := fmt.Sprintf(`UPDATE evento SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), n)
		result, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return nil, domain.NotFound("Evento não encontrado com o ID informado: " + id)
		}
	}

	return r.FindByID(ctx, id)
}

func (r *eventRepository) Remove(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM convidado_evento WHERE id_evento = $1`, id); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete guests: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM evento WHERE id = $1`, id)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete event: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		_ = tx.Rollback()
		return domain.NotFound("Evento não encontrado com o ID informado: " + id)
	}
	return tx.Commit()
}

// Find filters events. Name and status form an AND group; the guest email and
// organizer CPF predicates are OR'ed against it. The total is counted before
// pagination is applied.
func (r *eventRepository) Find(ctx context.Context, filter *domain.EventFilter) (*domain.EventPage, error) {
	var andClauses, orClauses []string
	args := []any{}
	n := 1
	arg := func(value any) string {
		args = append(args, value)
		placeholder := fmt.Sprintf("$%d", n)
		n++
		return placeholder
	}

	if filter.Name != "" {
		andClauses = append(andClauses, fmt.Sprintf("nome ILIKE %s", arg("%"+filter.Name+"%")))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		andClauses = append(andClauses, fmt.Sprintf("status = ANY(%s)", arg(pq.Array(statuses))))
	}
	if filter.GuestUnresolved {
		// Guest CPF resolved to no user: the predicate matches nothing.
		orClauses = append(orClauses, "FALSE")
	} else if filter.GuestEmail != "" {
		orClauses = append(orClauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM convidado_evento c WHERE c.id_evento = evento.id AND c.email_convidado = %s)",
			arg(filter.GuestEmail)))
	}
	if filter.OrganizerCPF != "" {
		orClauses = append(orClauses, fmt.Sprintf("cpf_organizador = %s", arg(filter.OrganizerCPF)))
	}

	var groups []string
	if len(andClauses) > 0 {
		groups = append(groups, "("+strings.Join(andClauses, " AND ")+")")
	}
	groups = append(groups, orClauses...)
	where := ""
	if len(groups) > 0 {
		where = " WHERE " + strings.Join(groups, " OR ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM evento`+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	query := `SELECT ` + eventColumns + ` FROM evento` + where +
		` ORDER BY dt_inicio DESC NULLS LAST, dt_inicio_prevista DESC NULLS LAST`
	if filter.Paginated() {
		query += fmt.Sprintf(" LIMIT %s OFFSET %s", arg(filter.Limit), arg((filter.Page-1)*filter.Limit))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	ids := make([]string, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	guestsByEvent, err := r.loadGuests(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, buildView(e, guestsByEvent[e.ID]))
	}

	return &domain.EventPage{
		Events: views,
		Pagination: domain.PageInfo{
			Page:  filter.Page,
			Limit: filter.Limit,
			Total: total,
		},
	}, nil
}

func (r *eventRepository) GuestListByEventName(ctx context.Context, name string) (*domain.GuestList, error) {
	var id string
	var eventName sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, nome FROM evento
		WHERE nome ILIKE $1
		ORDER BY dt_criacao DESC
		LIMIT 1
	`, "%"+name+"%").Scan(&id, &eventName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound("Evento não encontrado")
		}
		return nil, fmt.Errorf("find event by name: %w", err)
	}

	guestsByEvent, err := r.loadGuests(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	emails := make([]string, 0)
	for _, g := range guestsByEvent[id] {
		emails = append(emails, g.Email)
	}

	list := &domain.GuestList{
		Guests: domain.EmailSummary{Total: len(emails), Emails: emails},
	}
	if eventName.Valid {
		list.Name = &eventName.String
	}
	return list, nil
}
