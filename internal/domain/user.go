package domain

import (
	"context"
	"time"
)

// User is a registered user, identified by CPF. Organizers are users.
// swagger:model User
type User struct {
	CPF          string    `json:"cpf"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"dt_criacao"`
	UpdatedAt    time.Time `json:"dt_ult_atualizacao"`
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByCPF(ctx context.Context, cpf string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserLookup is the read-only port the event core consumes to validate
// organizers and to resolve guest CPFs to emails. A nil user with a nil error
// means "no such user".
type UserLookup interface {
	FindByCPF(ctx context.Context, cpf string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// UserService defines user-facing operations.
type UserService interface {
	Register(ctx context.Context, cpf, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (string, error)
	UserLookup
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(cpf, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user's CPF.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
