package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
}

func NewUpdateProjectUseCase(pRepo project.Repository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: pRepo}
}

type UpdateProjectInput struct {
	ProjectID    uuid.UUID
	Title        string
	Description  string
	Technologies string
	GithubURL    *string
	LiveURL      *string
	Featured     bool
	Order        int
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Title = strings.TrimSpace(input.Title)
	p.Description = input.Description
	p.Technologies = input.Technologies
	p.GithubURL = input.GithubURL
	p.LiveURL = input.LiveURL
	p.Featured = input.Featured
	p.Order = input.Order

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	return &UpdateProjectOutput{Project: p}, nil
}
