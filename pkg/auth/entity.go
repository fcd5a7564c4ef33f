package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the public view of a user, safe to return to clients.
// It never carries the password hash.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}
