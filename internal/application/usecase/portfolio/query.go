package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
	"github.com/sammy-mbugua/portfolio/pkg/pagination"
)

const (
	HomeEducationLimit   = 3
	HomeExperienceLimit  = 4
	HomeFeaturedLimit    = 6
	ProjectsPerPage      = 9
	RelatedProjectsLimit = 3
	NoLimit              = 0
)

var tracer = otel.Tracer("portfolio_usecase")

// QueryUseCase is the read side of the site: ordered, filtered and paged views of the
// stored content for each page.
type QueryUseCase struct {
	profileRepo    profile.Repository
	educationRepo  education.Repository
	experienceRepo experience.Repository
	skillRepo      skill.Repository
	projectRepo    project.Repository
	socialRepo     social.Repository
	logger         logger.Logger
}

func NewQueryUseCase(
	profileRepo profile.Repository,
	educationRepo education.Repository,
	experienceRepo experience.Repository,
	skillRepo skill.Repository,
	projectRepo project.Repository,
	socialRepo social.Repository,
	log logger.Logger,
) *QueryUseCase {
	return &QueryUseCase{
		profileRepo:    profileRepo,
		educationRepo:  educationRepo,
		experienceRepo: experienceRepo,
		skillRepo:      skillRepo,
		projectRepo:    projectRepo,
		socialRepo:     socialRepo,
		logger:         log,
	}
}

// GetProfile returns the first profile or nil.
func (uc *QueryUseCase) GetProfile(ctx context.Context) (*profile.Profile, error) {
	p, err := uc.profileRepo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return p, nil
}

func (uc *QueryUseCase) ListRecentEducation(ctx context.Context, limit int) ([]*education.Education, error) {
	items, err := uc.educationRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list education failed: %w", err)
	}
	return items, nil
}

func (uc *QueryUseCase) ListRecentExperience(ctx context.Context, limit int) ([]*experience.Experience, error) {
	items, err := uc.experienceRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list experience failed: %w", err)
	}
	return items, nil
}

func (uc *QueryUseCase) ListSkillCategories(ctx context.Context) ([]*skill.Category, error) {
	cats, err := uc.skillRepo.ListCategoriesWithSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skill categories failed: %w", err)
	}
	return cats, nil
}

func (uc *QueryUseCase) ListFeaturedProjects(ctx context.Context, limit int) ([]*project.Project, error) {
	projects, err := uc.projectRepo.List(ctx, project.Filter{FeaturedOnly: true}, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("list featured projects failed: %w", err)
	}
	return projects, nil
}

// ListRelatedProjects returns featured projects other than excludeID.
func (uc *QueryUseCase) ListRelatedProjects(ctx context.Context, excludeID uuid.UUID, limit int) ([]*project.Project, error) {
	filter := project.Filter{FeaturedOnly: true, ExcludeID: &excludeID}
	projects, err := uc.projectRepo.List(ctx, filter, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("list related projects failed: %w", err)
	}
	return projects, nil
}

func (uc *QueryUseCase) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return uc.projectRepo.FindByID(ctx, id)
}

func (uc *QueryUseCase) ListSocialLinks(ctx context.Context) ([]*social.Link, error) {
	links, err := uc.socialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links failed: %w", err)
	}
	return links, nil
}

type ListProjectsInput struct {
	FeaturedOnly bool
	Page         int
}

type ListProjectsOutput struct {
	Projects     []*project.Project
	Page         pagination.Page
	FeaturedOnly bool
}

// ListProjects pages through projects nine at a time. Out of range pages are clamped.
func (uc *QueryUseCase) ListProjects(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	ctx, span := tracer.Start(ctx, "ListProjects")
	defer span.End()

	filter := project.Filter{FeaturedOnly: input.FeaturedOnly}
	total, err := uc.projectRepo.Count(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("count projects failed: %w", err)
	}

	page := pagination.New(input.Page, ProjectsPerPage, total)
	span.SetAttributes(
		attribute.Int("page.requested", input.Page),
		attribute.Int("page.number", page.Number),
		attribute.Int("page.total", page.TotalPages),
	)

	projects, err := uc.projectRepo.List(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return &ListProjectsOutput{Projects: projects, Page: page, FeaturedOnly: input.FeaturedOnly}, nil
}
