package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/repository"
)

// pdfExtension is matched case-sensitively, so "REPORT.PDF" is rejected.
const pdfExtension = ".pdf"

// DocumentProcessor indexes a stored document.
type DocumentProcessor interface {
	Process(ctx context.Context, doc *model.UploadedDocument) (int, error)
}

// JobRunner runs expensive work in a bounded number of slots.
type JobRunner interface {
	Do(ctx context.Context, job func(ctx context.Context) error) error
}

// DocumentService orchestrates uploads: save, record, process, mark indexed.
type DocumentService struct {
	store     DocumentStore
	repo      repository.DocumentRepository
	processor DocumentProcessor
	pool      JobRunner
	now       func() time.Time
}

func NewDocumentService(store DocumentStore, repo repository.DocumentRepository, processor DocumentProcessor, pool JobRunner) *DocumentService {
	return &DocumentService{store: store, repo: repo, processor: processor, pool: pool, now: time.Now}
}

// ValidateFileName rejects anything that does not end in .pdf.
func ValidateFileName(fileName string) error {
	if !strings.HasSuffix(fileName, pdfExtension) {
		return fmt.Errorf("%w: Only PDF files are allowed", app_errors.ErrValidation)
	}
	return nil
}

// Upload stores content under fileName and indexes it. The returned result has
// Success set once every chunk of the document is in the index.
func (s *DocumentService) Upload(ctx context.Context, fileName string, content io.Reader) (*model.UploadResult, error) {
	if err := ValidateFileName(fileName); err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	doc, err := s.store.Save(ctx, fileName, content)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}
	slog.Info("Stored uploaded document", "file_name", fileName, "document_id", doc.ID, "size_bytes", doc.SizeBytes)

	if err := s.repo.UpsertDocument(ctx, doc); err != nil {
		metrics.UploadsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: could not record document: %w", app_errors.ErrStorage, err)
	}

	var chunkCount int
	err = s.pool.Do(ctx, func(ctx context.Context) error {
		n, err := s.processor.Process(ctx, doc)
		chunkCount = n
		return err
	})
	if err != nil {
		status := "failed"
		if errors.Is(err, app_errors.ErrBusy) {
			status = "busy"
		}
		metrics.UploadsTotal.WithLabelValues(status).Inc()
		if markErr := s.repo.MarkFailed(context.WithoutCancel(ctx), doc.ID); markErr != nil {
			slog.Warn("Could not mark document as failed", "document_id", doc.ID, "error", markErr)
		}
		return nil, err
	}

	indexedAt := s.now().UTC()
	if err := s.repo.MarkIndexed(context.WithoutCancel(ctx), doc.ID, chunkCount, indexedAt); err != nil {
		// The chunks are already searchable; only the bookkeeping is stale.
		slog.Warn("Could not mark document as indexed", "document_id", doc.ID, "error", err)
	}
	doc.Status = model.StatusIndexed
	doc.ChunkCount = chunkCount
	doc.IndexedAt = &indexedAt

	metrics.UploadsTotal.WithLabelValues("indexed").Inc()
	return &model.UploadResult{Document: doc, Success: true}, nil
}

// ListDocuments returns every recorded upload, newest first.
func (s *DocumentService) ListDocuments(ctx context.Context) ([]*model.UploadedDocument, error) {
	docs, err := s.repo.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns a single upload by its ID.
func (s *DocumentService) GetDocument(ctx context.Context, id string) (*model.UploadedDocument, error) {
	doc, err := s.repo.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: document %s", app_errors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	return doc, nil
}
