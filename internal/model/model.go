package model

import "time"

// Document statuses stored in the registry.
const (
	StatusStored  = "stored"
	StatusIndexed = "indexed"
	StatusFailed  = "failed"
)

// RoleUser marks a message written by the end user. The frontend sends "ai"
// for assistant turns, but only user turns are ever inspected.
const RoleUser = "user"

// UploadedDocument is a PDF persisted by the storage adapter. ID is the opaque
// storage key; FileName is what the client called it.
type UploadedDocument struct {
	ID         string     `json:"id"`
	FileName   string     `json:"file_name"`
	Path       string     `json:"-"`
	SizeBytes  int64      `json:"size_bytes"`
	ChunkCount int        `json:"chunk_count"`
	Status     string     `json:"status"`
	UploadedAt time.Time  `json:"uploaded_at"`
	IndexedAt  *time.Time `json:"indexed_at,omitempty"`
}

// Page holds the plain text of a single PDF page.
type Page struct {
	Number int
	Text   string
}

// DocumentChunk is a contiguous span of extracted text. Source is the storage
// path of the originating document.
type DocumentChunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	Source     string `json:"source"`
	Text       string `json:"text"`
	StartIndex int    `json:"start_index"`
}

// IndexEntry is a chunk paired with its embedding vector.
type IndexEntry struct {
	DocumentChunk
	Embedding []float32 `json:"embedding"`
}

// ScoredChunk is a search hit.
type ScoredChunk struct {
	DocumentChunk
	Score float64 `json:"score"`
}

// ChatMessage is one conversational turn.
type ChatMessage struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"What is the paper about?"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"dive"`
	Model    string        `json:"model" example:"deepseek-r1:1.5b"`
}

// ChatResponse is returned by POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Success bool `json:"success"`
}

// UploadResult describes the outcome of ingesting one document.
type UploadResult struct {
	Document *UploadedDocument
	Success  bool
}

// ModelStatus reports which language models are resident in the cache.
type ModelStatus struct {
	Active string   `json:"active"`
	Loaded []string `json:"loaded"`
}
