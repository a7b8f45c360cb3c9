package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	storage     service.BlobStorage
	logger      logger.Logger
}

func NewDeleteProjectUseCase(pRepo project.Repository, storage service.BlobStorage, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: pRepo, storage: storage, logger: log}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// Execute removes the project row, then its image. A leftover image is only logged.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, input.ProjectID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}

	if p.ImageRef != nil && *p.ImageRef != "" {
		if err := uc.storage.Delete(ctx, *p.ImageRef); err != nil {
			uc.logger.Warn("Failed to delete project image", zap.String("project_id", p.ID.String()), zap.Error(err))
		}
	}
	return nil
}
