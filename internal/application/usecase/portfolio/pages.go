package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
)

type HomeOutput struct {
	Profile          *profile.Profile
	Education        []*education.Education
	Experiences      []*experience.Experience
	SkillCategories  []*skill.Category
	FeaturedProjects []*project.Project
}

func (uc *QueryUseCase) Home(ctx context.Context) (*HomeOutput, error) {
	ctx, span := tracer.Start(ctx, "Home")
	defer span.End()

	out := &HomeOutput{}
	var err error
	if out.Profile, err = uc.GetProfile(ctx); err != nil {
		return nil, err
	}
	if out.Education, err = uc.ListRecentEducation(ctx, HomeEducationLimit); err != nil {
		return nil, err
	}
	if out.Experiences, err = uc.ListRecentExperience(ctx, HomeExperienceLimit); err != nil {
		return nil, err
	}
	if out.SkillCategories, err = uc.ListSkillCategories(ctx); err != nil {
		return nil, err
	}
	if out.FeaturedProjects, err = uc.ListFeaturedProjects(ctx, HomeFeaturedLimit); err != nil {
		return nil, err
	}
	return out, nil
}

type AboutOutput struct {
	Profile         *profile.Profile
	Education       []*education.Education
	SkillCategories []*skill.Category
}

func (uc *QueryUseCase) About(ctx context.Context) (*AboutOutput, error) {
	ctx, span := tracer.Start(ctx, "About")
	defer span.End()

	out := &AboutOutput{}
	var err error
	if out.Profile, err = uc.GetProfile(ctx); err != nil {
		return nil, err
	}
	if out.Education, err = uc.ListRecentEducation(ctx, NoLimit); err != nil {
		return nil, err
	}
	if out.SkillCategories, err = uc.ListSkillCategories(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

type ExperienceOutput struct {
	Experiences []*experience.Experience
}

func (uc *QueryUseCase) Experience(ctx context.Context) (*ExperienceOutput, error) {
	items, err := uc.ListRecentExperience(ctx, NoLimit)
	if err != nil {
		return nil, err
	}
	return &ExperienceOutput{Experiences: items}, nil
}

type ProjectDetailOutput struct {
	Project         *project.Project
	RelatedProjects []*project.Project
}

// ProjectDetail fails with apperror.ErrNotFound for unknown ids.
func (uc *QueryUseCase) ProjectDetail(ctx context.Context, id uuid.UUID) (*ProjectDetailOutput, error) {
	ctx, span := tracer.Start(ctx, "ProjectDetail")
	defer span.End()

	p, err := uc.GetProject(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	related, err := uc.ListRelatedProjects(ctx, id, RelatedProjectsLimit)
	if err != nil {
		return nil, err
	}
	return &ProjectDetailOutput{Project: p, RelatedProjects: related}, nil
}
