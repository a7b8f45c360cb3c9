package portfolio

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	domainPortfolio "github.com/sammy-mbugua/portfolio/internal/domain/portfolio"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/internal/testutil/memstore"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

func newQuery(store *memstore.Store) *QueryUseCase {
	return NewQueryUseCase(
		store.Profiles(), store.Education(), store.Experience(), store.Skills(),
		store.Projects(), store.Social(), logger.NewNop(),
	)
}

func addProjects(t *testing.T, store *memstore.Store, n int, featured func(i int) bool) []*project.Project {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*project.Project, 0, n)
	for i := 0; i < n; i++ {
		p := &project.Project{
			ID:           uuid.New(),
			Title:        fmt.Sprintf("Project %d", i),
			Description:  "d",
			Technologies: "Go",
			Featured:     featured(i),
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Projects().Save(context.Background(), p))
		out = append(out, p)
	}
	return out
}

func all(int) bool { return true }

func TestListProjects_Paginates(t *testing.T) {
	store := memstore.New()
	addProjects(t, store, 20, func(i int) bool { return i%2 == 0 })
	uc := newQuery(store)
	ctx := context.Background()

	out, err := uc.ListProjects(ctx, ListProjectsInput{Page: 1})
	require.NoError(t, err)
	assert.Len(t, out.Projects, ProjectsPerPage)
	assert.Equal(t, 3, out.Page.TotalPages)
	assert.Equal(t, 20, out.Page.TotalCount)

	out, err = uc.ListProjects(ctx, ListProjectsInput{Page: 3})
	require.NoError(t, err)
	assert.Len(t, out.Projects, 2)
	assert.False(t, out.Page.HasNext())

	out, err = uc.ListProjects(ctx, ListProjectsInput{FeaturedOnly: true, Page: 1})
	require.NoError(t, err)
	assert.Len(t, out.Projects, ProjectsPerPage)
	assert.Equal(t, 10, out.Page.TotalCount)
	assert.True(t, out.FeaturedOnly)
	for _, p := range out.Projects {
		assert.True(t, p.Featured)
	}
}

func TestListProjects_ClampsOutOfRangePage(t *testing.T) {
	store := memstore.New()
	addProjects(t, store, 10, all)
	uc := newQuery(store)

	for _, requested := range []int{0, -4, 99} {
		out, err := uc.ListProjects(context.Background(), ListProjectsInput{Page: requested})
		require.NoError(t, err)
		if requested > 1 {
			assert.Equal(t, 2, out.Page.Number, "page %d", requested)
			assert.Len(t, out.Projects, 1)
		} else {
			assert.Equal(t, 1, out.Page.Number, "page %d", requested)
			assert.Len(t, out.Projects, ProjectsPerPage)
		}
	}
}

func TestListProjects_Empty(t *testing.T) {
	out, err := newQuery(memstore.New()).ListProjects(context.Background(), ListProjectsInput{Page: 5})
	require.NoError(t, err)
	assert.Empty(t, out.Projects)
	assert.Equal(t, 1, out.Page.Number)
	assert.Equal(t, 1, out.Page.TotalPages)
}

func TestListProjects_OrderThenNewest(t *testing.T) {
	store := memstore.New()
	projects := addProjects(t, store, 3, all)
	// pinned first regardless of age
	projects[0].Order = -1
	require.NoError(t, store.Projects().Update(context.Background(), projects[0]))

	out, err := newQuery(store).ListProjects(context.Background(), ListProjectsInput{Page: 1})
	require.NoError(t, err)
	require.Len(t, out.Projects, 3)
	assert.Equal(t, projects[0].ID, out.Projects[0].ID)
	assert.Equal(t, projects[2].ID, out.Projects[1].ID)
	assert.Equal(t, projects[1].ID, out.Projects[2].ID)
}

func TestProjectDetail_RelatedExcludesSelfAndCaps(t *testing.T) {
	store := memstore.New()
	projects := addProjects(t, store, 6, all)
	uc := newQuery(store)

	out, err := uc.ProjectDetail(context.Background(), projects[2].ID)
	require.NoError(t, err)
	assert.Equal(t, projects[2].ID, out.Project.ID)
	assert.Len(t, out.RelatedProjects, RelatedProjectsLimit)
	for _, r := range out.RelatedProjects {
		assert.NotEqual(t, projects[2].ID, r.ID)
		assert.True(t, r.Featured)
	}
}

func TestProjectDetail_NotFound(t *testing.T) {
	_, err := newQuery(memstore.New()).ProjectDetail(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestHome_AppliesLimits(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	require.NoError(t, store.Profiles().Save(ctx, &profile.Profile{ID: uuid.New(), Name: "Sam", Title: "Dev", Email: "s@x.com"}))
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Education().Save(ctx, &education.Education{
			ID: uuid.New(), Degree: "BSc", Institution: "Uni",
			StartDate: domainPortfolio.Date(2010+i, time.January, 1),
			EndDate:   domainPortfolio.Date(2012+i, time.January, 1),
		}))
		require.NoError(t, store.Experience().Save(ctx, &experience.Experience{
			ID: uuid.New(), Title: "Dev", Company: "Co", Description: "d",
			StartDate: domainPortfolio.Date(2015+i, time.March, 1),
		}))
	}
	require.NoError(t, store.Skills().SaveCategory(ctx, &skill.Category{ID: uuid.New(), Name: "Go"}))
	addProjects(t, store, 8, all)

	out, err := newQuery(store).Home(ctx)
	require.NoError(t, err)
	require.NotNil(t, out.Profile)
	assert.Equal(t, "Sam", out.Profile.Name)
	assert.Len(t, out.Education, HomeEducationLimit)
	assert.Len(t, out.Experiences, HomeExperienceLimit)
	assert.Len(t, out.FeaturedProjects, HomeFeaturedLimit)
	assert.Len(t, out.SkillCategories, 1)

	assert.Equal(t, 2016, out.Education[0].EndDate.Year())
	assert.Equal(t, 2019, out.Experiences[0].StartDate.Year())
}

func TestHome_EmptySite(t *testing.T) {
	out, err := newQuery(memstore.New()).Home(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out.Profile)
	assert.Empty(t, out.Education)
	assert.Empty(t, out.FeaturedProjects)
}

func TestListSkillCategories_OrderThenName(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	tools := &skill.Category{ID: uuid.New(), Name: "Tools", Order: 2}
	backend := &skill.Category{ID: uuid.New(), Name: "Backend", Order: 1}
	require.NoError(t, store.Skills().SaveCategory(ctx, tools))
	require.NoError(t, store.Skills().SaveCategory(ctx, backend))
	for _, sk := range []skill.Skill{
		{CategoryID: backend.ID, Name: "alpha", Order: 1},
		{CategoryID: backend.ID, Name: "beta"},
		{CategoryID: backend.ID, Name: "Charlie"},
		{CategoryID: tools.ID, Name: "zsh"},
		{CategoryID: tools.ID, Name: "Make"},
	} {
		sk.ID = uuid.New()
		sk.Proficiency = 50
		require.NoError(t, store.Skills().SaveSkill(ctx, &sk))
	}

	cats, err := newQuery(store).ListSkillCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Backend", cats[0].Name)
	assert.Equal(t, []string{"Charlie", "beta", "alpha"}, skillNames(cats[0].Skills))
	assert.Equal(t, []string{"Make", "zsh"}, skillNames(cats[1].Skills))
}

func skillNames(skills []skill.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Name
	}
	return out
}
