package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
}

func NewCreateProjectUseCase(pRepo project.Repository) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: pRepo}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	Technologies string
	GithubURL    *string
	LiveURL      *string
	Featured     bool
	Order        int
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	newProject := &project.Project{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Technologies: input.Technologies,
		GithubURL:    input.GithubURL,
		LiveURL:      input.LiveURL,
		Featured:     input.Featured,
		Order:        input.Order,
		CreatedAt:    time.Now().UTC(),
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	return &CreateProjectOutput{Project: newProject}, nil
}
