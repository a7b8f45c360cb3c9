package portfolio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/project"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

const FeedItemLimit = 20

// FeedUseCase publishes the project list as a syndication feed.
type FeedUseCase struct {
	profileRepo profile.Repository
	projectRepo project.Repository
	logger      logger.Logger
	now         func() time.Time
}

func NewFeedUseCase(profileRepo profile.Repository, projectRepo project.Repository, log logger.Logger) *FeedUseCase {
	return &FeedUseCase{
		profileRepo: profileRepo,
		projectRepo: projectRepo,
		logger:      log,
		now:         time.Now,
	}
}

// Execute builds a feed of the most prominent projects. baseURL is the public origin
// of the site, e.g. "https://example.com".
func (uc *FeedUseCase) Execute(ctx context.Context, baseURL string) (*feeds.Feed, error) {
	ctx, span := tracer.Start(ctx, "FeedUseCase.Execute")
	defer span.End()

	baseURL = strings.TrimRight(baseURL, "/")

	p, err := uc.profileRepo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	projects, err := uc.projectRepo.List(ctx, project.Filter{}, FeedItemLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}

	feed := &feeds.Feed{
		Title:       "Projects",
		Link:        &feeds.Link{Href: baseURL + "/projects/"},
		Description: "Recent projects.",
		Created:     uc.now(),
	}
	if p != nil {
		feed.Title = p.Name + " - Projects"
		feed.Author = &feeds.Author{Name: p.Name, Email: p.Email}
	}

	feed.Items = make([]*feeds.Item, 0, len(projects))
	for _, pr := range projects {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          pr.ID.String(),
			Title:       pr.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/project/%s/", baseURL, pr.ID)},
			Description: pr.Description,
			Created:     pr.CreatedAt,
		})
	}

	uc.logger.Debug("Project feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
