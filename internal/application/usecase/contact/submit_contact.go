package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

var tracer = otel.Tracer("contact_usecase")

type SubmitContactUseCase struct {
	contactRepo contact.Repository
	notifier    service.ContactNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewSubmitContactUseCase(repo contact.Repository, notifier service.ContactNotifier, log logger.Logger) *SubmitContactUseCase {
	if notifier == nil {
		notifier = service.NewNopNotifier()
	}
	return &SubmitContactUseCase{
		contactRepo: repo,
		notifier:    notifier,
		logger:      log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SubmitContactInput carries the raw form values keyed by field name.
type SubmitContactInput struct {
	Values map[string]string
}

type SubmitContactOutput struct {
	Message *contact.Message
}

// Execute validates and stores a submission. Invalid input yields an AppError carrying
// the per-field messages and nothing is persisted.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	ctx, span := tracer.Start(ctx, "SubmitContact")
	defer span.End()

	result := contact.ValidateSubmission(input.Values)
	if !result.OK() {
		err := apperror.NewValidation(result.Errors)
		span.SetAttributes(attribute.StringSlice("invalid_fields", result.Errors.Fields()))
		return nil, err
	}

	sub := result.Submission
	msg := &contact.Message{
		ID:        uuid.New(),
		Name:      sub.Name,
		Email:     sub.Email,
		Subject:   sub.Subject,
		Body:      sub.Message,
		CreatedAt: uc.now(),
		Read:      false,
	}

	if err := uc.contactRepo.Save(ctx, msg); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save contact message failed: %w", err)
	}
	span.SetAttributes(attribute.String("message_id", msg.ID.String()))

	if err := uc.notifier.ContactReceived(ctx, msg); err != nil {
		uc.logger.Warn("Contact notification failed", zap.String("message_id", msg.ID.String()), zap.Error(err))
	}

	return &SubmitContactOutput{Message: msg}, nil
}
