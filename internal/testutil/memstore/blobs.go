package memstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/sammy-mbugua/portfolio/internal/application/service"
	"github.com/sammy-mbugua/portfolio/pkg/apperror"
)

// Blobs is an in-memory service.BlobStorage. References are "folder/N-filename".
type Blobs struct {
	mu      sync.Mutex
	seq     int
	files   map[string][]byte
	Deleted []string
}

func NewBlobs() *Blobs {
	return &Blobs{files: map[string][]byte{}}
}

var _ service.BlobStorage = (*Blobs)(nil)

func (b *Blobs) Upload(_ context.Context, file io.Reader, folder, filename string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	ref := path.Join(folder, fmt.Sprintf("%d-%s", b.seq, filename))
	b.files[ref] = data
	return ref, nil
}

func (b *Blobs) Open(_ context.Context, ref string) (*service.Blob, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.files[ref]
	if !ok {
		return nil, apperror.NewMissingResource("file", ref)
	}
	return &service.Blob{
		Body:     io.NopCloser(bytes.NewReader(data)),
		Size:     int64(len(data)),
		Filename: path.Base(ref),
	}, nil
}

func (b *Blobs) Delete(_ context.Context, ref string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.files, ref)
	b.Deleted = append(b.Deleted, ref)
	return nil
}

func (b *Blobs) URL(ref string) string { return "/media/" + ref }

// Has reports whether ref is stored.
func (b *Blobs) Has(ref string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.files[ref]
	return ok
}
