package sitecontext

import (
	"context"
	"fmt"

	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
)

// SiteContext is merged into every rendered page.
type SiteContext struct {
	Profile     *profile.Profile
	SocialLinks []*social.Link
}

// Build assembles a SiteContext. A nil links slice becomes empty so templates can range over it.
func Build(p *profile.Profile, links []*social.Link) SiteContext {
	if links == nil {
		links = []*social.Link{}
	}
	return SiteContext{Profile: p, SocialLinks: links}
}

type Supplier struct {
	profileRepo profile.Repository
	socialRepo  social.Repository
}

func NewSupplier(profileRepo profile.Repository, socialRepo social.Repository) *Supplier {
	return &Supplier{profileRepo: profileRepo, socialRepo: socialRepo}
}

// Get loads the current profile and social links. It runs once per rendered page.
func (s *Supplier) Get(ctx context.Context) (SiteContext, error) {
	p, err := s.profileRepo.First(ctx)
	if err != nil {
		return SiteContext{}, fmt.Errorf("load site profile failed: %w", err)
	}
	links, err := s.socialRepo.List(ctx)
	if err != nil {
		return SiteContext{}, fmt.Errorf("load social links failed: %w", err)
	}
	return Build(p, links), nil
}
