package content

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammy-mbugua/portfolio/internal/domain/portfolio"
	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
	"github.com/sammy-mbugua/portfolio/internal/testutil/memstore"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

func newContent(store *memstore.Store) *ContentUseCase {
	return NewContentUseCase(store.Education(), store.Experience(), store.Skills(), store.Social(), logger.NewNop())
}

func TestCreateExperience_CurrentPositionDropsEndDate(t *testing.T) {
	store := memstore.New()
	uc := newContent(store)
	end := portfolio.Date(2024, time.June, 1)

	e, err := uc.CreateExperience(context.Background(), ExperienceInput{
		Title:            "Software Engineer",
		Company:          "Acme",
		StartDate:        portfolio.Date(2023, time.January, 1),
		EndDate:          &end,
		Description:      "Building things",
		CurrentlyWorking: true,
	})
	require.NoError(t, err)
	assert.Nil(t, e.EndDate)
	assert.Equal(t, "Jan 2023 - Present", e.Duration())

	stored, err := store.Experience().FindByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.EndDate)
}

func TestCreateExperience_Invalid(t *testing.T) {
	uc := newContent(memstore.New())
	start := portfolio.Date(2023, time.January, 1)
	before := portfolio.Date(2022, time.January, 1)

	_, err := uc.CreateExperience(context.Background(), ExperienceInput{
		Title: "Dev", Company: "Acme", StartDate: start, EndDate: &before, Description: "d",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = uc.CreateExperience(context.Background(), ExperienceInput{Company: "Acme", StartDate: start, Description: "d"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestAchievements_CascadeWithExperience(t *testing.T) {
	store := memstore.New()
	uc := newContent(store)
	ctx := context.Background()

	e, err := uc.CreateExperience(ctx, ExperienceInput{
		Title: "Dev", Company: "Acme", StartDate: portfolio.Date(2020, time.May, 1), Description: "d",
	})
	require.NoError(t, err)

	second, err := uc.AddAchievement(ctx, e.ID, AchievementInput{Description: "Second", Order: 2})
	require.NoError(t, err)
	_, err = uc.AddAchievement(ctx, e.ID, AchievementInput{Description: "First", Order: 1})
	require.NoError(t, err)

	list, err := uc.ListExperience(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Achievements, 2)
	assert.Equal(t, "First", list[0].Achievements[0].Description)

	_, err = uc.UpdateAchievement(ctx, second.ID, AchievementInput{Description: "  "})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	require.NoError(t, uc.DeleteExperience(ctx, e.ID))
	_, err = store.Experience().FindAchievementByID(ctx, second.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddAchievement_UnknownExperience(t *testing.T) {
	_, err := newContent(memstore.New()).AddAchievement(context.Background(), uuid.New(), AchievementInput{Description: "x"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)
}

func TestAddSkill_UnknownCategory(t *testing.T) {
	store := memstore.New()
	_, err := newContent(store).AddSkill(context.Background(), uuid.New(), SkillInput{Name: "Go"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)

	cats, err := store.Skills().ListCategoriesWithSkills(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestSkills_DefaultProficiencyAndRange(t *testing.T) {
	store := memstore.New()
	uc := newContent(store)
	ctx := context.Background()

	cat, err := uc.CreateSkillCategory(ctx, CategoryInput{Name: "Backend"})
	require.NoError(t, err)

	s, err := uc.AddSkill(ctx, cat.ID, SkillInput{Name: "Go"})
	require.NoError(t, err)
	assert.Equal(t, skill.DefaultProficiency, s.Proficiency)

	tooHigh := 101
	_, err = uc.UpdateSkill(ctx, s.ID, SkillInput{Name: "Go", Proficiency: &tooHigh})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	stored, err := store.Skills().FindSkillByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, skill.DefaultProficiency, stored.Proficiency)

	negative := -1
	_, err = uc.AddSkill(ctx, cat.ID, SkillInput{Name: "Rust", Proficiency: &negative})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	full := 100
	s, err = uc.UpdateSkill(ctx, s.ID, SkillInput{Name: "Go", Proficiency: &full})
	require.NoError(t, err)
	assert.Equal(t, 100, s.Proficiency)
}

func TestDeleteSkillCategory_RemovesSkills(t *testing.T) {
	store := memstore.New()
	uc := newContent(store)
	ctx := context.Background()

	cat, err := uc.CreateSkillCategory(ctx, CategoryInput{Name: "Frontend"})
	require.NoError(t, err)
	s, err := uc.AddSkill(ctx, cat.ID, SkillInput{Name: "HTML"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteSkillCategory(ctx, cat.ID))
	_, err = store.Skills().FindSkillByID(ctx, s.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSocialLinks(t *testing.T) {
	uc := newContent(memstore.New())
	ctx := context.Background()

	l, err := uc.CreateSocialLink(ctx, SocialLinkInput{Platform: " GitHub ", URL: "https://github.com/sam"})
	require.NoError(t, err)
	assert.Equal(t, social.PlatformGithub, l.Platform)

	_, err = uc.CreateSocialLink(ctx, SocialLinkInput{Platform: "myspace", URL: "https://myspace.com/sam"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = uc.CreateSocialLink(ctx, SocialLinkInput{Platform: "github", URL: "github.com/sam"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestEducation_CRUD(t *testing.T) {
	uc := newContent(memstore.New())
	ctx := context.Background()

	e, err := uc.CreateEducation(ctx, EducationInput{
		Degree:      "BSc Computer Science",
		Institution: "Uni",
		StartDate:   portfolio.Date(2016, time.September, 1),
		EndDate:     portfolio.Date(2020, time.June, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sep 2016 - Jun 2020", e.Duration())

	e, err = uc.UpdateEducation(ctx, e.ID, EducationInput{
		Degree: "BSc", Institution: "Uni", StartDate: e.StartDate, EndDate: e.EndDate, Grade: "First",
	})
	require.NoError(t, err)
	assert.Equal(t, "First", e.Grade)

	require.NoError(t, uc.DeleteEducation(ctx, e.ID))
	list, err := uc.ListEducation(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
