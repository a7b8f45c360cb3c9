package content

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

type EducationInput struct {
	Degree      string
	Institution string
	StartDate   time.Time
	EndDate     time.Time
	Description string
	Grade       string
	Location    string
}

func (in EducationInput) apply(e *education.Education) {
	e.Degree = strings.TrimSpace(in.Degree)
	e.Institution = strings.TrimSpace(in.Institution)
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.Description = in.Description
	e.Grade = strings.TrimSpace(in.Grade)
	e.Location = strings.TrimSpace(in.Location)
}

func (uc *ContentUseCase) ListEducation(ctx context.Context) ([]*education.Education, error) {
	return uc.educationRepo.List(ctx, 0)
}

func (uc *ContentUseCase) CreateEducation(ctx context.Context, in EducationInput) (*education.Education, error) {
	e := &education.Education{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.educationRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ContentUseCase) UpdateEducation(ctx context.Context, id uuid.UUID, in EducationInput) (*education.Education, error) {
	e, err := uc.educationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.educationRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ContentUseCase) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return uc.educationRepo.Delete(ctx, id)
}
