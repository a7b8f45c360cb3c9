package content

import (
	"errors"

	"github.com/sammy-mbugua/portfolio/internal/domain/education"
	"github.com/sammy-mbugua/portfolio/internal/domain/experience"
	"github.com/sammy-mbugua/portfolio/internal/domain/skill"
	"github.com/sammy-mbugua/portfolio/internal/domain/social"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

// ContentUseCase maintains the résumé sections shown on the public pages.
type ContentUseCase struct {
	educationRepo  education.Repository
	experienceRepo experience.Repository
	skillRepo      skill.Repository
	socialRepo     social.Repository
	logger         logger.Logger
}

func NewContentUseCase(
	educationRepo education.Repository,
	experienceRepo experience.Repository,
	skillRepo skill.Repository,
	socialRepo social.Repository,
	log logger.Logger,
) *ContentUseCase {
	return &ContentUseCase{
		educationRepo:  educationRepo,
		experienceRepo: experienceRepo,
		skillRepo:      skillRepo,
		socialRepo:     socialRepo,
		logger:         log,
	}
}

// missingParent reports a child write against a parent that does not exist as bad input.
func missingParent(parent string, err error) error {
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.NewInvalidInput(parent+" does not exist", err)
	}
	return err
}
