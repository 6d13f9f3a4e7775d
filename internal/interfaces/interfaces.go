package interfaces

import (
	"context"
	"io"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// DocumentService defines the contract for uploading and listing documents.
type DocumentService interface {
	Upload(ctx context.Context, fileName string, content io.Reader) (*model.UploadResult, error)
	ListDocuments(ctx context.Context) ([]*model.UploadedDocument, error)
	GetDocument(ctx context.Context, id string) (*model.UploadedDocument, error)
}

// ChatService defines the contract for answering a conversation.
type ChatService interface {
	Chat(ctx context.Context, req *model.ChatRequest) (string, error)
}

// ModelService defines the contract for inspecting the model cache.
type ModelService interface {
	Status(ctx context.Context) (*model.ModelStatus, error)
}
