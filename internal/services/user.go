package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventcheckin/internal/domain"
)

const tokenExpiry = 24 * time.Hour

type userService struct {
	users  domain.UserRepository
	hasher domain.PasswordHasher
	issuer domain.TokenIssuer
}

// NewUserService wires the user service with its repository and auth adapters.
func NewUserService(users domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer) domain.UserService {
	return &userService{users: users, hasher: hasher, issuer: issuer}
}

func (s *userService) Register(ctx context.Context, cpf, name, email, password string) (*domain.User, error) {
	cpf = strings.TrimSpace(cpf)
	email = strings.TrimSpace(strings.ToLower(email))

	if existing, err := s.FindByCPF(ctx, cpf); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.Conflict("Usuário já cadastrado com o CPF informado")
	}
	if existing, err := s.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.Conflict("Usuário já cadastrado com o e-mail informado")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		CPF:          cpf,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.Forbidden("Credenciais inválidas")
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", domain.Forbidden("Credenciais inválidas")
	}
	token, err := s.issuer.Issue(user.CPF, user.Email, tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// FindByCPF returns the user or (nil, nil) when absent.
func (s *userService) FindByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	user, err := s.users.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by cpf: %w", err)
	}
	return user, nil
}

// FindByEmail returns the user or (nil, nil) when absent.
func (s *userService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}
