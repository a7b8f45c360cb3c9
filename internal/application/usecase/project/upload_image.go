package project

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

const ImageFolder = "projects"

type UploadImageUseCase struct {
	projectRepo project.Repository
	storage     service.BlobStorage
	logger      logger.Logger
}

func NewUploadImageUseCase(pRepo project.Repository, storage service.BlobStorage, log logger.Logger) *UploadImageUseCase {
	return &UploadImageUseCase{projectRepo: pRepo, storage: storage, logger: log}
}

type UploadImageInput struct {
	ProjectID uuid.UUID
	File      io.Reader
	Filename  string
}

type UploadImageOutput struct {
	Project *project.Project
}

// Execute stores the new image and points the project at it. The previous image is
// deleted afterwards.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	ref, err := uc.storage.Upload(ctx, input.File, ImageFolder, input.Filename)
	if err != nil {
		return nil, fmt.Errorf("upload project image failed: %w", err)
	}

	old := p.ImageRef
	p.ImageRef = &ref
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		if delErr := uc.storage.Delete(ctx, ref); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned upload", zap.String("ref", ref), zap.Error(delErr))
		}
		return nil, fmt.Errorf("update project image failed: %w", err)
	}

	if old != nil && *old != "" && *old != ref {
		if err := uc.storage.Delete(ctx, *old); err != nil {
			uc.logger.Warn("Failed to delete previous project image", zap.String("ref", *old), zap.Error(err))
		}
	}
	return &UploadImageOutput{Project: p}, nil
}
