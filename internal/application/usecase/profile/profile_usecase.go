package profile

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

const (
	ImageFolder  = "profile"
	ResumeFolder = "resume"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	storage     service.BlobStorage
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, storage service.BlobStorage, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		storage:     storage,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteGetProfile fails with NotFound when no profile has been created yet.
func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	if p == nil {
		return nil, apperror.NewNotFound("profile", "first")
	}
	return &GetProfileOutput{Profile: p}, nil
}

type SaveProfileInput struct {
	Name        string
	Title       string
	Email       string
	Phone       string
	Location    string
	GithubURL   *string
	LinkedinURL *string
	About       string
}

type SaveProfileOutput struct {
	Profile *profile.Profile
	Created bool
}

// ExecuteSaveProfile updates the first profile, creating it when none exists.
func (uc *ProfileUseCase) ExecuteSaveProfile(ctx context.Context, input SaveProfileInput) (*SaveProfileOutput, error) {
	existing, err := uc.profileRepo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile failed: %w", err)
	}

	now := time.Now().UTC()
	p := existing
	created := p == nil
	if created {
		p = &profile.Profile{ID: uuid.New(), CreatedAt: now}
	}
	p.Name = strings.TrimSpace(input.Name)
	p.Title = strings.TrimSpace(input.Title)
	p.Email = strings.TrimSpace(input.Email)
	p.Phone = strings.TrimSpace(input.Phone)
	p.Location = strings.TrimSpace(input.Location)
	p.GithubURL = input.GithubURL
	p.LinkedinURL = input.LinkedinURL
	p.About = input.About
	p.UpdatedAt = now

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("profile validation failed", err)
	}

	if created {
		err = uc.profileRepo.Save(ctx, p)
	} else {
		err = uc.profileRepo.Update(ctx, p)
	}
	if err != nil {
		return nil, fmt.Errorf("save profile failed: %w", err)
	}
	return &SaveProfileOutput{Profile: p, Created: created}, nil
}

func (uc *ProfileUseCase) ExecuteDeleteProfile(ctx context.Context, id uuid.UUID) error {
	p, err := uc.profileRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.profileRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete profile failed: %w", err)
	}
	uc.discard(ctx, p.ImageRef)
	uc.discard(ctx, p.ResumeRef)
	return nil
}

type UploadInput struct {
	File     io.Reader
	Filename string
}

func (uc *ProfileUseCase) ExecuteUploadImage(ctx context.Context, input UploadInput) (*profile.Profile, error) {
	return uc.replaceFile(ctx, input, ImageFolder, func(p *profile.Profile) **string { return &p.ImageRef })
}

func (uc *ProfileUseCase) ExecuteUploadResume(ctx context.Context, input UploadInput) (*profile.Profile, error) {
	return uc.replaceFile(ctx, input, ResumeFolder, func(p *profile.Profile) **string { return &p.ResumeRef })
}

func (uc *ProfileUseCase) replaceFile(ctx context.Context, input UploadInput, folder string, field func(*profile.Profile) **string) (*profile.Profile, error) {
	out, err := uc.ExecuteGetProfile(ctx)
	if err != nil {
		return nil, err
	}
	p := out.Profile

	ref, err := uc.storage.Upload(ctx, input.File, folder, input.Filename)
	if err != nil {
		return nil, fmt.Errorf("upload %s failed: %w", folder, err)
	}

	slot := field(p)
	old := *slot
	*slot = &ref
	p.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		uc.discard(ctx, &ref)
		return nil, fmt.Errorf("update profile %s failed: %w", folder, err)
	}
	if old != nil && *old != ref {
		uc.discard(ctx, old)
	}
	return p, nil
}

func (uc *ProfileUseCase) discard(ctx context.Context, ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if err := uc.storage.Delete(ctx, *ref); err != nil {
		uc.logger.Warn("Failed to delete stored file", zap.String("ref", *ref), zap.Error(err))
	}
}
