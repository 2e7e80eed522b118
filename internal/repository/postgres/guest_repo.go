package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"eventcheckin/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

// NewGuestRepository returns a postgres-backed GuestRepository. The record
// list of each guest lives in a jsonb column and is always written whole.
func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	g := &domain.Guest{}
	var raw []byte
	if err := row.Scan(&g.EventID, &g.Email, &raw, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &g.Records); err != nil {
			return nil, fmt.Errorf("decode check-in records: %w", err)
		}
	}
	if g.Records == nil {
		g.Records = []domain.CheckInRecord{}
	}
	return g, nil
}

func (r *guestRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Guest, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id_evento, email_convidado, check_ins, dt_criacao, dt_ult_atualizacao
		FROM convidado_evento
		WHERE id_evento = $1 AND email_convidado = $2
	`, eventID, email)
	guest, err := scanGuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (r *guestRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id_evento, email_convidado, check_ins, dt_criacao, dt_ult_atualizacao
		FROM convidado_evento
		WHERE id_evento = $1
		ORDER BY dt_criacao, email_convidado
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) ReplaceRecords(ctx context.Context, eventID, email string, records []domain.CheckInRecord) error {
	if records == nil {
		records = []domain.CheckInRecord{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode check-in records: %w", err)
	}
	result, err := r.DB.ExecContext(ctx, `
		UPDATE convidado_evento
		SET check_ins = $1, dt_ult_atualizacao = NOW()
		WHERE id_evento = $2 AND email_convidado = $3
	`, raw, eventID, email)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
