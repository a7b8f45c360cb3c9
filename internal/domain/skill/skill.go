package skill

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	MinProficiency     = 0
	MaxProficiency     = 100
	DefaultProficiency = 50
	MaxNameLen         = 100
)

type Category struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Order  int       `json:"order"`
	Skills []Skill   `json:"skills"`
}

// Skill belongs to exactly one Category and is deleted with it.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Proficiency int       `json:"proficiency"`
	Order       int       `json:"order"`
}

var (
	ErrCategoryNotFound      = errors.New("skill category not found")
	ErrSkillNotFound         = errors.New("skill not found")
	ErrProficiencyOutOfRange = fmt.Errorf("proficiency must be between %d and %d", MinProficiency, MaxProficiency)
)

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if len([]rune(c.Name)) > MaxNameLen {
		return errors.New("name is too long")
	}
	return nil
}

func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("name is required")
	}
	if len([]rune(s.Name)) > MaxNameLen {
		return errors.New("name is too long")
	}
	if s.Proficiency < MinProficiency || s.Proficiency > MaxProficiency {
		return ErrProficiencyOutOfRange
	}
	return nil
}

// SortSkills orders skills by (order, name) within a category.
func SortSkills(skills []Skill) {
	sort.SliceStable(skills, func(i, j int) bool {
		if skills[i].Order != skills[j].Order {
			return skills[i].Order < skills[j].Order
		}
		return skills[i].Name < skills[j].Name
	})
}

type Repository interface {
	// ListCategoriesWithSkills returns categories by order, each with its skills preloaded.
	ListCategoriesWithSkills(ctx context.Context) ([]*Category, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error)
	SaveCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	// DeleteCategory removes the category and, by cascade, its skills.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	FindSkillByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	SaveSkill(ctx context.Context, s *Skill) error
	UpdateSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}
