package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider serves models and embeddings from any OpenAI compatible API.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider builds a client for apiKey. A non-empty baseURL points it at
// a self-hosted compatible server instead of api.openai.com.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg)}
}

// Load returns a handle for name. Hosted models need no warm-up, so this only
// checks that the model is known to the server.
func (p *OpenAIProvider) Load(ctx context.Context, name string) (Model, error) {
	if _, err := p.client.GetModel(ctx, name); err != nil {
		return nil, fmt.Errorf("could not load model %q: %w", name, err)
	}
	return &openAIModel{client: p.client, name: name}, nil
}

type openAIModel struct {
	client *openai.Client
	name   string
}

func (m *openAIModel) Name() string { return m.name }

func (m *openAIModel) Generate(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    m.name,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, msg := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// OpenAIEmbedder computes embeddings with a fixed OpenAI compatible model.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

func NewOpenAIEmbedder(provider *OpenAIProvider, model string) *OpenAIEmbedder {
	return &OpenAIEmbedder{client: provider.client, model: model}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	// Data carries its own index; do not rely on response order.
	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
