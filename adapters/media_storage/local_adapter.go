package media_storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/internal/config"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

// localAdapter keeps files under a root directory. References are slash separated
// paths relative to that root, e.g. "resume/1b9d...-cv.pdf".
type localAdapter struct {
	root     string
	mediaURL string
	logger   logger.Logger
}

func NewLocalAdapter(cfg config.Config, log logger.Logger) (service.BlobStorage, error) {
	root := cfg.Storage.LocalRoot
	if root == "" {
		return nil, fmt.Errorf("storage local_root has not config")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create media root: %w", err)
	}
	mediaURL := cfg.Storage.MediaURL
	if !strings.HasSuffix(mediaURL, "/") {
		mediaURL += "/"
	}
	log.Info("Local media storage ready", zap.String("root", root))
	return &localAdapter{root: root, mediaURL: mediaURL, logger: log}, nil
}

func (a *localAdapter) Upload(ctx context.Context, file io.Reader, folder string, filename string) (string, error) {
	ref := path.Join(cleanSegment(folder), uuid.NewString()+"-"+cleanSegment(filename))
	full, err := a.resolve(ref)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(full)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return ref, nil
}

func (a *localAdapter) Open(ctx context.Context, ref string) (*service.Blob, error) {
	full, err := a.resolve(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.NewMissingResource("file", ref)
		}
		return nil, apperror.NewInternal("failed to open file", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, apperror.NewInternal("failed to stat file", err)
	}
	return &service.Blob{
		Body:        f,
		Size:        info.Size(),
		ContentType: mime.TypeByExtension(path.Ext(ref)),
		Filename:    displayName(path.Base(ref)),
	}, nil
}

func (a *localAdapter) Delete(ctx context.Context, ref string) error {
	full, err := a.resolve(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (a *localAdapter) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return a.mediaURL + strings.TrimPrefix(ref, "/")
}

// resolve maps ref into the root, refusing anything that would escape it.
func (a *localAdapter) resolve(ref string) (string, error) {
	clean := path.Clean("/" + ref)
	if clean == "/" {
		return "", apperror.NewInvalidInput("empty file reference", nil)
	}
	return filepath.Join(a.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func cleanSegment(s string) string {
	s = path.Base(strings.ReplaceAll(s, "\\", "/"))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, s)
	if s == "" || s == "." || s == ".." {
		return "file"
	}
	return s
}

// displayName strips the uuid prefix added by Upload.
func displayName(base string) string {
	if len(base) > 37 && base[36] == '-' {
		if _, err := uuid.Parse(base[:36]); err == nil {
			return base[37:]
		}
	}
	return base
}
