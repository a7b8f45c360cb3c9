package contact

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Message is an inbound contact-form submission. Only Read changes after creation.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

var ErrMessageNotFound = errors.New("contact message not found")

// ListFilter selects messages by read state; nil Read means all.
type ListFilter struct {
	Read *bool
}

type Repository interface {
	Save(ctx context.Context, m *Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	// List returns messages newest first.
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Message, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	SetRead(ctx context.Context, ids []uuid.UUID, read bool) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
