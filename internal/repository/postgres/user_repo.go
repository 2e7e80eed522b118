package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventcheckin/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

// NewUserRepository returns a postgres-backed UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO usuario (cpf, nome, email, senha, dt_criacao, dt_ult_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, u.CPF, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *userRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	return r.getBy(ctx, "cpf", cpf)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepository) getBy(ctx context.Context, column, value string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT cpf, nome, email, senha, dt_criacao, dt_ult_atualizacao FROM usuario WHERE ` + column + ` = $1`
	err := r.DB.QueryRowContext(ctx, query, value).Scan(
		&u.CPF, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
