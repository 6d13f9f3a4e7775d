package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/index"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/llm"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
)

const systemPrompt = "You are an expert research assistant. Use the provided context to answer the query. " +
	"If unsure, state that you don't know. Be concise and factual in your responses."

const userPromptTemplate = "Query: %s\nContext: %s\nAnswer:"

// contextSeparator sits between retrieved chunks in the prompt.
const contextSeparator = "\n\n"

// ModelProvider hands out loaded models by ID.
type ModelProvider interface {
	Get(ctx context.Context, id string) (llm.Model, error)
}

// Generator answers a query from the indexed documents.
type Generator struct {
	models   ModelProvider
	embedder llm.Embedder
	index    index.Index
	topK     int
}

func NewGenerator(models ModelProvider, embedder llm.Embedder, idx index.Index, topK int) *Generator {
	return &Generator{models: models, embedder: embedder, index: idx, topK: topK}
}

// Generate retrieves the chunks closest to query, builds the prompt and returns
// the raw model output. An empty modelID uses the default model.
func (g *Generator) Generate(ctx context.Context, query, modelID string) (string, error) {
	start := time.Now()

	m, err := g.models.Get(ctx, modelID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", app_errors.ErrGeneration, err)
	}

	vector, err := g.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%w: failed to embed query: %w", app_errors.ErrGeneration, err)
	}

	hits, err := g.index.Search(ctx, vector, g.topK)
	if err != nil {
		return "", fmt.Errorf("%w: failed to search index: %w", app_errors.ErrGeneration, err)
	}

	texts := make([]string, len(hits))
	for i, h := range hits {
		texts[i] = h.Text
	}

	answer, err := m.Generate(ctx, BuildPrompt(query, strings.Join(texts, contextSeparator)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", app_errors.ErrGeneration, err)
	}

	metrics.GenerationDuration.WithLabelValues(m.Name()).Observe(time.Since(start).Seconds())
	slog.Debug("Generated answer", "model", m.Name(), "context_chunks", len(hits), "duration", time.Since(start))
	return answer, nil
}

// BuildPrompt assembles the system and user messages for a query and its context.
func BuildPrompt(query, context string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(userPromptTemplate, query, context)},
	}
}
