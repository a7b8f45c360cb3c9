package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/domain/contact"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
	"github.com/sammy-mbugua/portfolio/pkg/pagination"
)

const AdminPageSize = 20

// AdminUseCase is the inbox view over stored contact messages.
type AdminUseCase struct {
	contactRepo contact.Repository
	logger      logger.Logger
}

func NewAdminUseCase(repo contact.Repository, log logger.Logger) *AdminUseCase {
	return &AdminUseCase{contactRepo: repo, logger: log}
}

type ListInput struct {
	Read *bool
	Page int
}

type ListOutput struct {
	Messages []*contact.Message
	Page     pagination.Page
}

func (uc *AdminUseCase) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	filter := contact.ListFilter{Read: input.Read}
	total, err := uc.contactRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count contact messages failed: %w", err)
	}
	page := pagination.New(input.Page, AdminPageSize, total)
	msgs, err := uc.contactRepo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list contact messages failed: %w", err)
	}
	return &ListOutput{Messages: msgs, Page: page}, nil
}

func (uc *AdminUseCase) Get(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	return uc.contactRepo.FindByID(ctx, id)
}

// MarkRead flags the given messages as read and returns how many rows changed.
func (uc *AdminUseCase) MarkRead(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return uc.setRead(ctx, ids, true)
}

func (uc *AdminUseCase) MarkUnread(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return uc.setRead(ctx, ids, false)
}

func (uc *AdminUseCase) setRead(ctx context.Context, ids []uuid.UUID, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, apperror.NewInvalidInput("no message ids given", nil)
	}
	n, err := uc.contactRepo.SetRead(ctx, ids, read)
	if err != nil {
		return 0, fmt.Errorf("update read state failed: %w", err)
	}
	uc.logger.Info("Contact messages updated", zap.Int64("count", n), zap.Bool("read", read))
	return n, nil
}

func (uc *AdminUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.contactRepo.Delete(ctx, id)
}
