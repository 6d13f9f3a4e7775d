// Package storage persists uploaded PDFs on the local filesystem under opaque keys.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// keyNamespace scopes the name-based UUIDs used as storage keys.
var keyNamespace = uuid.MustParse("6f0c1c55-6a53-4c1e-9a55-0e1f3c5a9d42")

// File is a stored document opened for random access reads.
type File interface {
	io.ReaderAt
	io.Closer
}

// FileStore writes documents into a single root directory.
type FileStore struct {
	root string
	now  func() time.Time
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root, now: time.Now}
}

// Root returns the directory documents are written to.
func (s *FileStore) Root() string {
	return s.root
}

// KeyFor maps a client file name to its storage key. The mapping is stable, so
// uploading the same name twice overwrites the earlier bytes.
func KeyFor(fileName string) string {
	return uuid.NewSHA1(keyNamespace, []byte(fileName)).String()
}

// Save copies content to <root>/<key>.pdf, creating the root if needed.
func (s *FileStore) Save(ctx context.Context, fileName string, content io.Reader) (*model.UploadedDocument, error) {
	if fileName == "" {
		return nil, fmt.Errorf("%w: empty file name", app_errors.ErrStorage)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrStorage, err)
	}

	if err := os.MkdirAll(s.root, 0750); err != nil {
		return nil, fmt.Errorf("%w: failed to create storage directory: %w", app_errors.ErrStorage, err)
	}

	key := KeyFor(fileName)
	dest := filepath.Join(s.root, key+".pdf")

	// Write to a temp file first so a failed upload never leaves a truncated PDF behind.
	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	size, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: content})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrStorage, err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrStorage, err)
	}

	return &model.UploadedDocument{
		ID:         key,
		FileName:   fileName,
		Path:       dest,
		SizeBytes:  size,
		Status:     model.StatusStored,
		UploadedAt: s.now().UTC(),
	}, nil
}

// Open returns the stored bytes of a document.
func (s *FileStore) Open(doc *model.UploadedDocument) (File, error) {
	f, err := os.Open(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrStorage, err)
	}
	return f, nil
}

// ctxReader stops a copy as soon as the request is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
