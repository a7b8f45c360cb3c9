package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
	"github.com/sammy-mbugua/portfolio/internal/domain/user"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/auth"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type Repositories struct {
	Profile    profile.Repository
	Education  education.Repository
	Experience experience.Repository
	Skill      skill.Repository
	Project    project.Repository
	Social     social.Repository
	User       user.Repository
}

type SeedUseCase struct {
	repos  Repositories
	logger logger.Logger
	now    func() time.Time
}

func NewSeedUseCase(repos Repositories, log logger.Logger) *SeedUseCase {
	return &SeedUseCase{repos: repos, logger: log, now: func() time.Time { return time.Now().UTC() }}
}

type OwnerInput struct {
	Email    string
	Password string
}

// SeedOwner creates the admin user or resets its password.
func (uc *SeedUseCase) SeedOwner(ctx context.Context, in OwnerInput) (*user.User, error) {
	email := user.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperror.NewInvalidInput("owner email and password are required", nil)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.NewInternal("cannot hash password", err)
	}
	u := &user.User{ID: uuid.New(), Email: email, PasswordHash: hash}
	if err := uc.repos.User.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("upsert owner failed: %w", err)
	}
	uc.logger.Info("Owner seeded", zap.String("email", email))
	return u, nil
}

// Summary counts what SeedPortfolio wrote.
type Summary struct {
	Education    int
	Experience   int
	Achievements int
	Categories   int
	Skills       int
	Projects     int
	SocialLinks  int
}

// SeedPortfolio replaces all portfolio content with data. Contact messages and users are
// left alone.
func (uc *SeedUseCase) SeedPortfolio(ctx context.Context, data Dataset) (*Summary, error) {
	if err := uc.clear(ctx); err != nil {
		return nil, err
	}
	now := uc.now()
	sum := &Summary{}

	pd := data.Profile
	p := &profile.Profile{
		ID:          uuid.New(),
		Name:        pd.Name,
		Title:       pd.Title,
		Email:       pd.Email,
		Phone:       pd.Phone,
		Location:    pd.Location,
		GithubURL:   optional(pd.GithubURL),
		LinkedinURL: optional(pd.LinkedinURL),
		About:       pd.About,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.save("profile", p.Validate, func() error { return uc.repos.Profile.Save(ctx, p) }); err != nil {
		return nil, err
	}
	uc.logger.Info("Created profile", zap.String("name", p.Name))

	for _, ed := range data.Education {
		e := &education.Education{
			ID:          uuid.New(),
			Degree:      ed.Degree,
			Institution: ed.Institution,
			StartDate:   ed.Start,
			EndDate:     ed.End,
			Location:    ed.Location,
			CreatedAt:   now,
		}
		if err := uc.save("education", e.Validate, func() error { return uc.repos.Education.Save(ctx, e) }); err != nil {
			return nil, err
		}
		sum.Education++
	}

	for _, xd := range data.Experience {
		end := xd.End
		x := &experience.Experience{
			ID:          uuid.New(),
			Title:       xd.Title,
			Company:     xd.Company,
			StartDate:   xd.Start,
			EndDate:     &end,
			Description: xd.Description,
			CreatedAt:   now,
		}
		if end.IsZero() {
			x.EndDate = nil
		}
		if err := uc.save("experience", x.Validate, func() error { return uc.repos.Experience.Save(ctx, x) }); err != nil {
			return nil, err
		}
		sum.Experience++
		for i, desc := range xd.Achievements {
			a := &experience.Achievement{ID: uuid.New(), ExperienceID: x.ID, Description: desc, Order: i + 1}
			if err := uc.save("achievement", a.Validate, func() error { return uc.repos.Experience.SaveAchievement(ctx, a) }); err != nil {
				return nil, err
			}
			sum.Achievements++
		}
	}

	for ci, cd := range data.SkillCategories {
		c := &skill.Category{ID: uuid.New(), Name: cd.Name, Order: ci + 1}
		if err := uc.save("skill category", c.Validate, func() error { return uc.repos.Skill.SaveCategory(ctx, c) }); err != nil {
			return nil, err
		}
		sum.Categories++
		for si, name := range cd.Skills {
			s := &skill.Skill{ID: uuid.New(), CategoryID: c.ID, Name: name, Proficiency: data.SkillProficiency, Order: si + 1}
			if err := uc.save("skill", s.Validate, func() error { return uc.repos.Skill.SaveSkill(ctx, s) }); err != nil {
				return nil, err
			}
			sum.Skills++
		}
		uc.logger.Info("Created skill category", zap.String("name", c.Name), zap.Int("skills", len(cd.Skills)))
	}

	for i, pd := range data.Projects {
		pr := &project.Project{
			ID:           uuid.New(),
			Title:        pd.Title,
			Description:  pd.Description,
			Technologies: pd.Technologies,
			Featured:     pd.Featured,
			Order:        pd.Order,
			// later entries are older so ties on order still list in dataset order
			CreatedAt: now.Add(-time.Duration(i) * time.Second),
		}
		if err := uc.save("project", pr.Validate, func() error { return uc.repos.Project.Save(ctx, pr) }); err != nil {
			return nil, err
		}
		sum.Projects++
	}

	for i, sd := range data.SocialLinks {
		l := &social.Link{ID: uuid.New(), Platform: sd.Platform, URL: sd.URL, Order: i + 1}
		if err := uc.save("social link", l.Validate, func() error { return uc.repos.Social.Save(ctx, l) }); err != nil {
			return nil, err
		}
		sum.SocialLinks++
	}

	uc.logger.Info("Portfolio data populated",
		zap.Int("experience", sum.Experience),
		zap.Int("skills", sum.Skills),
		zap.Int("projects", sum.Projects),
	)
	return sum, nil
}

func (uc *SeedUseCase) clear(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"profiles", uc.repos.Profile.DeleteAll},
		{"education", uc.repos.Education.DeleteAll},
		{"experience", uc.repos.Experience.DeleteAll},
		{"skill categories", uc.repos.Skill.DeleteAll},
		{"projects", uc.repos.Project.DeleteAll},
		{"social links", uc.repos.Social.DeleteAll},
	}
	for _, s := range steps {
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("clear %s failed: %w", s.name, err)
		}
	}
	return nil
}

func (uc *SeedUseCase) save(kind string, validate func() error, write func() error) error {
	if err := validate(); err != nil {
		return apperror.NewInvalidInput(kind+" seed data is invalid", err)
	}
	if err := write(); err != nil {
		return fmt.Errorf("save %s failed: %w", kind, err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
