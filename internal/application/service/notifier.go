package service

import (
	"context"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
)

// ContactNotifier announces a stored contact message to interested systems.
type ContactNotifier interface {
	ContactReceived(ctx context.Context, m *contact.Message) error
}

type nopNotifier struct{}

func NewNopNotifier() ContactNotifier { return nopNotifier{} }

func (nopNotifier) ContactReceived(context.Context, *contact.Message) error { return nil }
