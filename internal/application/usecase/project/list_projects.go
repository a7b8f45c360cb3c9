package project

import (
	"context"

	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/pagination"
)

const AdminPageSize = 20

// ListProjectsUseCase is the admin listing: every project, featured or not.
type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(pRepo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: pRepo}
}

type ListProjectsInput struct {
	Page int
}

type ListProjectsOutput struct {
	Projects []*project.Project
	Page     pagination.Page
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	total, err := uc.projectRepo.Count(ctx, project.Filter{})
	if err != nil {
		return nil, err
	}
	page := pagination.New(input.Page, AdminPageSize, total)

	projects, err := uc.projectRepo.List(ctx, project.Filter{}, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects, Page: page}, nil
}
