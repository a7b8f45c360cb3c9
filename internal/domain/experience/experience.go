package experience

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/portfolio"
)

const PresentLabel = "Present"

type Experience struct {
	ID               uuid.UUID     `json:"id"`
	Title            string        `json:"title"`
	Company          string        `json:"company"`
	Location         string        `json:"location"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          *time.Time    `json:"end_date"`
	Description      string        `json:"description"`
	CurrentlyWorking bool          `json:"currently_working"`
	CreatedAt        time.Time     `json:"created_at"`
	Achievements     []Achievement `json:"achievements"`
}

// Achievement is owned by exactly one Experience and goes away with it.
type Achievement struct {
	ID           uuid.UUID `json:"id"`
	ExperienceID uuid.UUID `json:"experience_id"`
	Description  string    `json:"description"`
	Order        int       `json:"order"`
}

var (
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrAchievementNotFound = errors.New("achievement not found")
)

// Duration renders the start month and either the end month or "Present".
func Duration(start time.Time, end *time.Time, current bool) string {
	endLabel := PresentLabel
	if !current {
		if end == nil {
			return portfolio.MonthYear(start)
		}
		endLabel = portfolio.MonthYear(*end)
	}
	return portfolio.MonthYear(start) + " - " + endLabel
}

func (e *Experience) Duration() string {
	return Duration(e.StartDate, e.EndDate, e.CurrentlyWorking)
}

// Normalize enforces that a current position has no end date. Called before every write.
func (e *Experience) Normalize() {
	if e.CurrentlyWorking {
		e.EndDate = nil
	}
}

func (e *Experience) Validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return errors.New("title is required")
	case len([]rune(e.Title)) > 200:
		return errors.New("title is too long")
	case strings.TrimSpace(e.Company) == "":
		return errors.New("company is required")
	case len([]rune(e.Company)) > 200:
		return errors.New("company is too long")
	case len([]rune(e.Location)) > 100:
		return errors.New("location is too long")
	case e.StartDate.IsZero():
		return errors.New("start date is required")
	case strings.TrimSpace(e.Description) == "":
		return errors.New("description is required")
	case e.EndDate != nil && e.EndDate.Before(e.StartDate):
		return errors.New("end date is before start date")
	}
	return nil
}

func (a *Achievement) Validate() error {
	if strings.TrimSpace(a.Description) == "" {
		return errors.New("description is required")
	}
	return nil
}

type Repository interface {
	// List returns experience newest first with achievements loaded; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Experience, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	// Delete removes the experience and, by cascade, its achievements.
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	FindAchievementByID(ctx context.Context, id uuid.UUID) (*Achievement, error)
	SaveAchievement(ctx context.Context, a *Achievement) error
	UpdateAchievement(ctx context.Context, a *Achievement) error
	DeleteAchievement(ctx context.Context, id uuid.UUID) error
}
