package education

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sammy-mbugua/portfolio/internal/domain/portfolio"
)

type Education struct {
	ID          uuid.UUID `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	Grade       string    `json:"grade"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

var ErrEducationNotFound = errors.New("education not found")

// Duration renders "Mon YYYY - Mon YYYY".
func Duration(start, end time.Time) string {
	return portfolio.MonthYear(start) + " - " + portfolio.MonthYear(end)
}

func (e *Education) Duration() string {
	return Duration(e.StartDate, e.EndDate)
}

func (e *Education) Validate() error {
	switch {
	case strings.TrimSpace(e.Degree) == "":
		return errors.New("degree is required")
	case len([]rune(e.Degree)) > 200:
		return errors.New("degree is too long")
	case strings.TrimSpace(e.Institution) == "":
		return errors.New("institution is required")
	case len([]rune(e.Institution)) > 200:
		return errors.New("institution is too long")
	case e.StartDate.IsZero() || e.EndDate.IsZero():
		return errors.New("start and end dates are required")
	case len([]rune(e.Grade)) > 50:
		return errors.New("grade is too long")
	case len([]rune(e.Location)) > 100:
		return errors.New("location is too long")
	}
	return nil
}

type Repository interface {
	// List returns education most recent first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Education, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}
