package employer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Employer is a company record created by an authenticated user.
// CompanyLogo is a reference into the logo store; empty means no logo.
type Employer struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CompanyName     string    `json:"company_name"`
	CompanySize     string    `json:"company_size"`
	Industry        string    `json:"industry"`
	CompanyLocation string    `json:"company_location"`
	CompanyLogo     string    `json:"company_logo,omitempty"`
	CreatedBy       uuid.UUID `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Update carries a partial update. Empty fields are left unchanged.
type Update struct {
	Name            string
	Email           string
	CompanyName     string
	CompanySize     string
	Industry        string
	CompanyLocation string
	CompanyLogo     string
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	return u == Update{}
}

var (
	ErrNotFound   = errors.New("employer not found")
	ErrEmailTaken = errors.New("employer email already in use")
)

// ErrValidation is a validation error carrying the user-facing message.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository is the persistence port for employer records.
type Repository interface {
	Create(ctx context.Context, e Employer) error
	GetByID(ctx context.Context, id uuid.UUID) (Employer, error)
	GetByEmail(ctx context.Context, email string) (Employer, error)
	// List returns all records, most recently created first.
	List(ctx context.Context) ([]Employer, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (Employer, error)
	// Delete removes the record and returns its last state.
	Delete(ctx context.Context, id uuid.UUID) (Employer, error)
}
