package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcheckin/internal/domain"
)

var userRowColumns = []string{"cpf", "nome", "email", "senha", "dt_criacao", "dt_ult_atualizacao"}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO usuario`).
		WithArgs("12345678901", "Ana", "ana@b.com", "hash", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserRepository(db)
	err = repo.Create(ctx, &domain.User{
		CPF:          "12345678901",
		Name:         "Ana",
		Email:        "ana@b.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByCPF(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(userRowColumns).
			AddRow("12345678901", "Ana", "ana@b.com", "hash", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE cpf = \$1`).
			WithArgs("12345678901").
			WillReturnRows(rows)

		repo := NewUserRepository(db)
		user, err := repo.GetByCPF(ctx, "12345678901")
		require.NoError(t, err)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE cpf = \$1`).
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByCPF(ctx, "00000000000")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow("12345678901", "Ana", "ana@b.com", "hash", now, now)
	mock.ExpectQuery(`SELECT (.+) FROM usuario WHERE email = \$1`).
		WithArgs("ana@b.com").
		WillReturnRows(rows)

	repo := NewUserRepository(db)
	user, err := repo.GetByEmail(ctx, "ana@b.com")
	require.NoError(t, err)
	assert.Equal(t, "12345678901", user.CPF)
	require.NoError(t, mock.ExpectationsWereMet())
}
