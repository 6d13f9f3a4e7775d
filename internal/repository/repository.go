package repository

import (
	"context"
	"time"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// DocumentRepository records every uploaded document and its indexing state.
// This interface makes it easy to switch database implementations.
type DocumentRepository interface {
	UpsertDocument(ctx context.Context, doc *model.UploadedDocument) error
	MarkIndexed(ctx context.Context, id string, chunkCount int, indexedAt time.Time) error
	MarkFailed(ctx context.Context, id string) error
	GetDocument(ctx context.Context, id string) (*model.UploadedDocument, error)
	ListDocuments(ctx context.Context) ([]*model.UploadedDocument, error)
}
