package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/adapters/event"
	"github.com/sammy-mbugua/portfolio/internal/config"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

// The worker turns contact.received events into owner notifications. Delivery is a
// structured log line; the log pipeline routes it to whatever alerting is in place.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting portfolio worker...")

	consumer, err := event.NewContactEventConsumer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifyLog := appLogger.With(zap.String("component", "contact-notifier"))
	err = consumer.Run(ctx, func(_ context.Context, p event.ContactEventPayload) error {
		notifyLog.Info("New contact message",
			zap.String("message_id", p.MessageID.String()),
			zap.String("from", p.Name),
			zap.String("email", p.Email),
			zap.String("subject", p.Subject),
			zap.Time("received_at", p.ReceivedAt),
		)
		return nil
	})
	if err != nil {
		appLogger.Error("Worker stopped with error", err)
	}
	appLogger.Info("Worker stopped")
}
