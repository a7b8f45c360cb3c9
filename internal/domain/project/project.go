package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxTitleLen        = 200
	MaxTechnologiesLen = 300
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"`
	GithubURL    *string   `json:"github_url"`
	LiveURL      *string   `json:"live_url"`
	Featured     bool      `json:"featured"`
	Order        int       `json:"order"`
	ImageRef     *string   `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrProjectNotFound = errors.New("project not found")

// TechList splits a comma separated technology string into trimmed tokens.
func TechList(technologies string) []string {
	parts := strings.Split(technologies, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (p *Project) TechList() []string {
	return TechList(p.Technologies)
}

func (p *Project) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return errors.New("title is required")
	case len([]rune(p.Title)) > MaxTitleLen:
		return errors.New("title is too long")
	case strings.TrimSpace(p.Description) == "":
		return errors.New("description is required")
	case strings.TrimSpace(p.Technologies) == "":
		return errors.New("technologies is required")
	case len([]rune(p.Technologies)) > MaxTechnologiesLen:
		return errors.New("technologies is too long")
	}
	return nil
}

// Filter narrows project listings.
type Filter struct {
	FeaturedOnly bool
	ExcludeID    *uuid.UUID
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	// List returns projects by (order, newest first); limit <= 0 means no limit.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Project, error)
	Count(ctx context.Context, filter Filter) (int, error)
}
