package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/config"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

const ContactConsumerGroup = "contact-notifier-group"

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ContactEventHandler processes one decoded event. Returning an error leaves the
// message uncommitted.
type ContactEventHandler func(ctx context.Context, payload ContactEventPayload) error

type ContactEventConsumer struct {
	reader messageReader
	logger logger.Logger
}

func NewContactEventConsumer(cfg config.Config, log logger.Logger) (*ContactEventConsumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicContactEvents,
		GroupID:  ContactConsumerGroup,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &ContactEventConsumer{reader: reader, logger: log}, nil
}

// Run reads until ctx is cancelled. Undecodable messages are committed and skipped.
func (c *ContactEventConsumer) Run(ctx context.Context, handle ContactEventHandler) error {
	c.logger.Info("Worker listening", zap.String("topic", TopicContactEvents))
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			// io.EOF means the reader was closed.
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload ContactEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			c.logger.Warn("Failed to unmarshal event, skipping", zap.Error(err), zap.String("key", string(msg.Key)))
			c.commit(ctx, msg)
			continue
		}

		if err := handle(ctx, payload); err != nil {
			c.logger.Error("Failed to process contact event", err, zap.String("message_id", payload.MessageID.String()))
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *ContactEventConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *ContactEventConsumer) Close() error {
	return c.reader.Close()
}
