package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound          = errors.New("not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrEmailNotFound     = errors.New("email not found")
	ErrPasswordMismatch  = errors.New("password mismatch")
)

// ErrValidation is a simple validation error carrying the user-facing message.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
