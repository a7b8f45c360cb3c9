package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLen     = 100
	MaxTitleLen    = 200
	MaxPhoneLen    = 20
	MaxLocationLen = 100
)

// Profile is the site owner's résumé header. The site expects a single record.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	GithubURL   *string   `json:"github_url"`
	LinkedinURL *string   `json:"linkedin_url"`
	About       string    `json:"about"`
	ImageRef    *string   `json:"profile_image"`
	ResumeRef   *string   `json:"resume"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrProfileNotFound = errors.New("profile not found")

// FormatPhone renders a phone number for display, hyphens instead of spaces.
func FormatPhone(phone string) string {
	return strings.ReplaceAll(phone, " ", "-")
}

func (p *Profile) FormattedPhone() string {
	return FormatPhone(p.Phone)
}

func (p *Profile) HasResume() bool {
	return p.ResumeRef != nil && *p.ResumeRef != ""
}

func (p *Profile) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return errors.New("name is required")
	case len([]rune(p.Name)) > MaxNameLen:
		return errors.New("name is too long")
	case strings.TrimSpace(p.Title) == "":
		return errors.New("title is required")
	case len([]rune(p.Title)) > MaxTitleLen:
		return errors.New("title is too long")
	case strings.TrimSpace(p.Email) == "":
		return errors.New("email is required")
	case len([]rune(p.Phone)) > MaxPhoneLen:
		return errors.New("phone is too long")
	case len([]rune(p.Location)) > MaxLocationLen:
		return errors.New("location is too long")
	}
	return nil
}

type Repository interface {
	// First returns one profile, or nil when none exists.
	First(ctx context.Context) (*Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}
