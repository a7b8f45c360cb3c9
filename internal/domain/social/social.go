package social

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
)

type Platform string

const (
	PlatformGithub    Platform = "github"
	PlatformLinkedin  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformYoutube   Platform = "youtube"
	PlatformOther     Platform = "other"
)

var platformLabels = map[Platform]string{
	PlatformGithub:    "GitHub",
	PlatformLinkedin:  "LinkedIn",
	PlatformTwitter:   "Twitter",
	PlatformFacebook:  "Facebook",
	PlatformInstagram: "Instagram",
	PlatformYoutube:   "YouTube",
	PlatformOther:     "Other",
}

type Link struct {
	ID       uuid.UUID `json:"id"`
	Platform Platform  `json:"platform"`
	URL      string    `json:"url"`
	Order    int       `json:"order"`
}

var (
	ErrLinkNotFound    = errors.New("social link not found")
	ErrInvalidPlatform = errors.New("invalid social platform")
	ErrInvalidURL      = errors.New("url must be an absolute http(s) URL")
)

func (p Platform) Valid() bool {
	_, ok := platformLabels[p]
	return ok
}

// Label is the human readable platform name.
func (p Platform) Label() string {
	if l, ok := platformLabels[p]; ok {
		return l
	}
	return string(p)
}

func (l *Link) Label() string { return l.Platform.Label() }

func (l *Link) Validate() error {
	if !l.Platform.Valid() {
		return ErrInvalidPlatform
	}
	u, err := url.Parse(l.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

type Repository interface {
	// List returns links by order.
	List(ctx context.Context) ([]*Link, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Link, error)
	Save(ctx context.Context, l *Link) error
	Update(ctx context.Context, l *Link) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}
