package content

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

type ExperienceInput struct {
	Title            string
	Company          string
	Location         string
	StartDate        time.Time
	EndDate          *time.Time
	Description      string
	CurrentlyWorking bool
}

func (in ExperienceInput) apply(e *experience.Experience) {
	e.Title = strings.TrimSpace(in.Title)
	e.Company = strings.TrimSpace(in.Company)
	e.Location = strings.TrimSpace(in.Location)
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.Description = in.Description
	e.CurrentlyWorking = in.CurrentlyWorking
	e.Normalize()
}

func (uc *ContentUseCase) ListExperience(ctx context.Context) ([]*experience.Experience, error) {
	return uc.experienceRepo.List(ctx, 0)
}

// CreateExperience stores a position. A current position never keeps an end date.
func (uc *ContentUseCase) CreateExperience(ctx context.Context, in ExperienceInput) (*experience.Experience, error) {
	e := &experience.Experience{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.experienceRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ContentUseCase) UpdateExperience(ctx context.Context, id uuid.UUID, in ExperienceInput) (*experience.Experience, error) {
	e, err := uc.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(e)
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.experienceRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteExperience removes the position together with its achievements.
func (uc *ContentUseCase) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	if err := uc.experienceRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Experience deleted", zap.String("experience_id", id.String()))
	return nil
}

type AchievementInput struct {
	Description string
	Order       int
}

// AddAchievement fails with NotFound when the experience does not exist.
func (uc *ContentUseCase) AddAchievement(ctx context.Context, experienceID uuid.UUID, in AchievementInput) (*experience.Achievement, error) {
	if _, err := uc.experienceRepo.FindByID(ctx, experienceID); err != nil {
		return nil, missingParent("experience", err)
	}
	a := &experience.Achievement{
		ID:           uuid.New(),
		ExperienceID: experienceID,
		Description:  strings.TrimSpace(in.Description),
		Order:        in.Order,
	}
	if err := a.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("achievement validation failed", err)
	}
	if err := uc.experienceRepo.SaveAchievement(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *ContentUseCase) UpdateAchievement(ctx context.Context, id uuid.UUID, in AchievementInput) (*experience.Achievement, error) {
	a, err := uc.experienceRepo.FindAchievementByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Description = strings.TrimSpace(in.Description)
	a.Order = in.Order
	if err := a.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("achievement validation failed", err)
	}
	if err := uc.experienceRepo.UpdateAchievement(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *ContentUseCase) DeleteAchievement(ctx context.Context, id uuid.UUID) error {
	return uc.experienceRepo.DeleteAchievement(ctx, id)
}
