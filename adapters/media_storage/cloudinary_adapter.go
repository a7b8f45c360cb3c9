package media_storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/config"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

// cloudinaryAdapter stores files on Cloudinary. The reference is the secure delivery URL.
type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	folder string
	client *http.Client
	logger logger.Logger
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.BlobStorage, error) {
	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("Connect Cloudinary successfully", zap.String("cloud_name", cfg.Cloudinary.CloudName))
	return &cloudinaryAdapter{cld: cld, folder: cfg.Cloudinary.Folder, client: http.DefaultClient, logger: log}, nil
}

func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, folder string, filename string) (string, error) {
	name := strings.TrimSuffix(cleanSegment(filename), path.Ext(filename))
	uploadParams := uploader.UploadParams{
		PublicID:       name,
		Folder:         path.Join(a.folder, folder),
		ResourceType:   "auto",
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	}
	result, err := a.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload cloudinary: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

func (a *cloudinaryAdapter) Open(ctx context.Context, ref string) (*service.Blob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, apperror.NewMissingResource("file", ref)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperror.NewInternal("failed to fetch cloudinary asset", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, apperror.NewMissingResource("file", ref)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, apperror.NewInternal(fmt.Sprintf("cloudinary returned %d", resp.StatusCode), nil)
	}
	return &service.Blob{
		Body:        resp.Body,
		Size:        resp.ContentLength,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    path.Base(req.URL.Path),
	}, nil
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, ref string) error {
	asset, err := parseAssetURL(ref)
	if err != nil {
		return apperror.NewInvalidInput("not a cloudinary asset url", err)
	}
	res, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     asset.PublicID,
		ResourceType: asset.ResourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	a.logger.Debug("Cloudinary destroy", zap.String("public_id", asset.PublicID), zap.String("result", res.Result))
	return nil
}

func (a *cloudinaryAdapter) URL(ref string) string {
	return ref
}

type assetRef struct {
	ResourceType string
	PublicID     string
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// parseAssetURL extracts what Destroy needs from a delivery URL of the form
// https://res.cloudinary.com/<cloud>/<resource_type>/upload/[v<version>/]<public_id>.<ext>
// Raw files keep their extension in the public id.
func parseAssetURL(ref string) (assetRef, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return assetRef{}, err
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || parts[2] != "upload" {
		return assetRef{}, fmt.Errorf("unexpected cloudinary path %q", u.Path)
	}
	rest := parts[3:]
	if len(rest) > 1 && versionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}
	publicID := strings.Join(rest, "/")
	resourceType := parts[1]
	if resourceType != "raw" {
		publicID = strings.TrimSuffix(publicID, path.Ext(publicID))
	}
	if publicID == "" {
		return assetRef{}, fmt.Errorf("empty public id in %q", ref)
	}
	return assetRef{ResourceType: resourceType, PublicID: publicID}, nil
}
