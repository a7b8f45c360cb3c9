package service

import (
	"context"
	"io"
)

// Blob is an opened stored file. The caller closes Body.
type Blob struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
	Filename    string
}

// BlobStorage keeps uploaded files (profile image, résumé, project images) outside the
// database; entities only store the returned reference.
type BlobStorage interface {
	Upload(ctx context.Context, file io.Reader, folder string, filename string) (string, error)
	// Open returns an apperror.ErrMissingResource error when ref does not exist.
	Open(ctx context.Context, ref string) (*Blob, error)
	Delete(ctx context.Context, ref string) error
	// URL is the public address a browser can load ref from.
	URL(ref string) string
}
