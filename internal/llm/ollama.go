package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaProvider is an HTTP client for the Ollama REST API.
type OllamaProvider struct {
	client *http.Client
	url    string
}

func NewOllamaProvider(url string) *OllamaProvider {
	return &OllamaProvider{
		client: &http.Client{},
		url:    url,
	}
}

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaChatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
}

type ollamaLoadRequest struct {
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}

type ollamaEmbedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type ollamaEmbedResponse struct {
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
}

// Ping reports whether the Ollama server answers on its root endpoint.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api returned non-200 status %d", resp.StatusCode)
	}
	return nil
}

// Load asks Ollama to bring the model into memory. A generate request with no
// prompt only loads the model, so this blocks until the model is resident and
// fails if it has not been pulled.
func (p *OllamaProvider) Load(ctx context.Context, name string) (Model, error) {
	if err := p.post(ctx, "/api/generate", ollamaLoadRequest{Model: name}, nil); err != nil {
		return nil, fmt.Errorf("could not load model %q: %w", name, err)
	}
	return &ollamaModel{provider: p, name: name}, nil
}

// Chat sends a non-streaming chat request and returns the assistant reply.
func (p *OllamaProvider) Chat(ctx context.Context, model string, messages []Message) (string, error) {
	var resp ollamaChatResponse
	req := ollamaChatRequest{Model: model, Messages: messages, Stream: false}
	if err := p.post(ctx, "/api/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Message.Content, nil
}

// Embed computes one embedding per input text, in input order.
func (p *OllamaProvider) Embed(ctx context.Context, model string, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	var resp ollamaEmbedResponse
	if err := p.post(ctx, "/api/embed", ollamaEmbedRequest{Model: model, Input: texts}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}
	return resp.Embeddings, nil
}

// post marshals body, sends it to path and decodes the JSON reply into out
// unless out is nil.
func (p *OllamaProvider) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

type ollamaModel struct {
	provider *OllamaProvider
	name     string
}

func (m *ollamaModel) Name() string { return m.name }

func (m *ollamaModel) Generate(ctx context.Context, messages []Message) (string, error) {
	return m.provider.Chat(ctx, m.name, messages)
}

// OllamaEmbedder computes embeddings with a fixed Ollama model.
type OllamaEmbedder struct {
	provider *OllamaProvider
	model    string
}

func NewOllamaEmbedder(provider *OllamaProvider, model string) *OllamaEmbedder {
	return &OllamaEmbedder{provider: provider, model: model}
}

func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.provider.Embed(ctx, e.model, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return e.provider.Embed(ctx, e.model, texts)
}
