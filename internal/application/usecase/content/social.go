package content

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/social"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

type SocialLinkInput struct {
	Platform string
	URL      string
	Order    int
}

func (uc *ContentUseCase) ListSocialLinks(ctx context.Context) ([]*social.Link, error) {
	return uc.socialRepo.List(ctx)
}

func (uc *ContentUseCase) CreateSocialLink(ctx context.Context, in SocialLinkInput) (*social.Link, error) {
	l := &social.Link{
		ID:       uuid.New(),
		Platform: social.Platform(strings.ToLower(strings.TrimSpace(in.Platform))),
		URL:      strings.TrimSpace(in.URL),
		Order:    in.Order,
	}
	if err := l.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("social link validation failed", err)
	}
	if err := uc.socialRepo.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *ContentUseCase) UpdateSocialLink(ctx context.Context, id uuid.UUID, in SocialLinkInput) (*social.Link, error) {
	l, err := uc.socialRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Platform = social.Platform(strings.ToLower(strings.TrimSpace(in.Platform)))
	l.URL = strings.TrimSpace(in.URL)
	l.Order = in.Order
	if err := l.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("social link validation failed", err)
	}
	if err := uc.socialRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *ContentUseCase) DeleteSocialLink(ctx context.Context, id uuid.UUID) error {
	return uc.socialRepo.Delete(ctx, id)
}
