// Package llm talks to the language model providers: it computes embeddings,
// loads chat models and runs inference.
package llm

import "context"

// Chat roles understood by every provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry of a chat prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Embedder turns text into vectors. Every call of a given Embedder must return
// vectors of the same dimension.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Model is a loaded, ready to use chat model.
type Model interface {
	Name() string
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Loader prepares a model for inference. Loading may block for a long time.
type Loader interface {
	Load(ctx context.Context, name string) (Model, error)
}
