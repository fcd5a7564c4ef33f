package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

// AuthUseCase describes registration and login behavior.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (Identity, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
}

type LoginResult struct {
	User  Identity
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (Identity, error) {
	if strings.TrimSpace(name) == "" {
		return Identity{}, ErrValidation("Name is required")
	}
	if strings.TrimSpace(email) == "" {
		return Identity{}, ErrValidation("Email is required")
	}
	if password == "" {
		return Identity{}, ErrValidation("Password is required")
	}
	if len(password) < MinPasswordLen {
		return Identity{}, ErrValidation("Password length must be at least 6 characters")
	}

	// Fast pre-check; the unique constraint on email is the real guard.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Identity{}, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, err
	}

	user := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return Identity{}, err
	}
	return user.Identity(), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if strings.TrimSpace(email) == "" {
		return LoginResult{}, ErrValidation("Email is required")
	}
	if password == "" {
		return LoginResult{}, ErrValidation("Password is required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, ErrEmailNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, ErrPasswordMismatch
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user.Identity(), Token: token}, nil
}
