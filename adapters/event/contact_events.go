package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
)

const ContactEventTypeReceived = "contact.received"

// ContactEventPayload omits the message body; consumers fetch it from the admin API.
type ContactEventPayload struct {
	EventType  string    `json:"event_type"`
	MessageID  uuid.UUID `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	ReceivedAt time.Time `json:"received_at"`
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload ContactEventPayload) error {
	return c.publish(ctx, c.ContactEventsWriter, payload.MessageID.String(), payload)
}

// ContactReceived satisfies service.ContactNotifier.
func (c *KafkaProducerClient) ContactReceived(ctx context.Context, m *contact.Message) error {
	return c.PublishContactEvent(ctx, ContactEventPayload{
		EventType:  ContactEventTypeReceived,
		MessageID:  m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Subject:    m.Subject,
		ReceivedAt: m.CreatedAt,
	})
}
