package content

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

type CategoryInput struct {
	Name  string
	Order int
}

type SkillInput struct {
	Name string
	// Proficiency defaults to skill.DefaultProficiency when nil.
	Proficiency *int
	Order       int
}

func (uc *ContentUseCase) ListSkillCategories(ctx context.Context) ([]*skill.Category, error) {
	return uc.skillRepo.ListCategoriesWithSkills(ctx)
}

func (uc *ContentUseCase) CreateSkillCategory(ctx context.Context, in CategoryInput) (*skill.Category, error) {
	c := &skill.Category{ID: uuid.New(), Name: strings.TrimSpace(in.Name), Order: in.Order}
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill category validation failed", err)
	}
	if err := uc.skillRepo.SaveCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ContentUseCase) UpdateSkillCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (*skill.Category, error) {
	c, err := uc.skillRepo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Order = in.Order
	if err := c.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill category validation failed", err)
	}
	if err := uc.skillRepo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteSkillCategory removes the category together with its skills.
func (uc *ContentUseCase) DeleteSkillCategory(ctx context.Context, id uuid.UUID) error {
	return uc.skillRepo.DeleteCategory(ctx, id)
}

func (uc *ContentUseCase) AddSkill(ctx context.Context, categoryID uuid.UUID, in SkillInput) (*skill.Skill, error) {
	if _, err := uc.skillRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return nil, missingParent("skill category", err)
	}
	s := &skill.Skill{
		ID:          uuid.New(),
		CategoryID:  categoryID,
		Name:        strings.TrimSpace(in.Name),
		Proficiency: skill.DefaultProficiency,
		Order:       in.Order,
	}
	if in.Proficiency != nil {
		s.Proficiency = *in.Proficiency
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.skillRepo.SaveSkill(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSkill rejects an out-of-range proficiency before touching the stored row.
func (uc *ContentUseCase) UpdateSkill(ctx context.Context, id uuid.UUID, in SkillInput) (*skill.Skill, error) {
	s, err := uc.skillRepo.FindSkillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Name = strings.TrimSpace(in.Name)
	s.Order = in.Order
	if in.Proficiency != nil {
		s.Proficiency = *in.Proficiency
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.skillRepo.UpdateSkill(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ContentUseCase) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return uc.skillRepo.DeleteSkill(ctx, id)
}
