package resume

import (
	"context"
	"fmt"
	"path"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/domain/profile"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

const defaultContentType = "application/octet-stream"

type DownloadResumeUseCase struct {
	profileRepo profile.Repository
	storage     service.BlobStorage
}

func NewDownloadResumeUseCase(repo profile.Repository, storage service.BlobStorage) *DownloadResumeUseCase {
	return &DownloadResumeUseCase{profileRepo: repo, storage: storage}
}

// DownloadResumeOutput holds an open stream; the caller must close Body.
type DownloadResumeOutput struct {
	*service.Blob
}

// Execute opens the owner's resume. Any missing link in the chain (no profile, no
// resume, blob gone) is reported as apperror.ErrMissingResource.
func (uc *DownloadResumeUseCase) Execute(ctx context.Context) (*DownloadResumeOutput, error) {
	p, err := uc.profileRepo.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile failed: %w", err)
	}
	if p == nil {
		return nil, apperror.NewMissingResource("resume", "no profile exists")
	}
	if !p.HasResume() {
		return nil, apperror.NewMissingResource("resume", "profile has no resume")
	}

	blob, err := uc.storage.Open(ctx, *p.ResumeRef)
	if err != nil {
		return nil, err
	}
	if blob.Filename == "" {
		blob.Filename = path.Base(*p.ResumeRef)
	}
	if blob.ContentType == "" {
		blob.ContentType = defaultContentType
	}
	return &DownloadResumeOutput{Blob: blob}, nil
}
