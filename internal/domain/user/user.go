package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// User is an administrator allowed to maintain site content.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash string    `json:"-"`
}

// NormalizeEmail is the stored and looked-up form of an admin email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Upsert(ctx context.Context, u *User) error
}
