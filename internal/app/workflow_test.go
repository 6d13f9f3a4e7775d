package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/pdfextract/pdftest"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/storage"
)

// fakeOllama answers the handful of Ollama endpoints the application uses.
type fakeOllama struct {
	mu       sync.Mutex
	loads    []string
	lastChat []map[string]string
}

func (f *fakeOllama) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		w.WriteHeader(http.StatusOK)
	case "/api/generate":
		var req struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.loads = append(f.loads, req.Model)
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"done":true}`))
	case "/api/embed":
		var req struct {
			Input []string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		embeddings := make([][]float32, len(req.Input))
		for i, text := range req.Input {
			embeddings[i] = []float32{
				float32(len(text)) + 1,
				float32(strings.Count(text, "a")) + 1,
				float32(strings.Count(text, "e")) + 1,
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"embeddings": embeddings})
	case "/api/chat":
		var req struct {
			Messages []map[string]string `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.lastChat = req.Messages
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"<think>reading</think>The paper is about gophers."},"done":true}`))
	default:
		http.NotFound(w, r)
	}
}

func uploadRequest(t *testing.T, url, fileName string, content []byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(url+"/upload", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func TestFullDocumentWorkflow(t *testing.T) {
	ollama := &fakeOllama{}
	ollamaServer := httptest.NewServer(ollama)
	defer ollamaServer.Close()

	cfg := testConfig(t, ollamaServer.URL)
	app, err := NewApp(cfg)
	require.NoError(t, err)
	defer app.Close()

	server := httptest.NewServer(app.Server.Handler)
	defer server.Close()

	pdf := pdftest.Build("Gophers are burrowing rodents.", "They are also the Go mascot.")

	t.Run("UploadDocument", func(t *testing.T) {
		resp := uploadRequest(t, server.URL, "gophers.pdf", pdf)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out model.UploadResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.True(t, out.Success)
	})

	t.Run("RejectNonPDF", func(t *testing.T) {
		resp := uploadRequest(t, server.URL, "notes.txt", []byte("plain text"))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Contains(t, out["detail"], "Only PDF files are allowed")
	})

	t.Run("RejectUnreadablePDF", func(t *testing.T) {
		resp := uploadRequest(t, server.URL, "broken.pdf", []byte("not really a pdf"))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("ListDocuments", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/documents")
		require.NoError(t, err)
		defer resp.Body.Close()

		var docs []model.UploadedDocument
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&docs))

		byName := make(map[string]model.UploadedDocument, len(docs))
		for _, d := range docs {
			byName[d.FileName] = d
		}
		require.Contains(t, byName, "gophers.pdf")
		assert.Equal(t, model.StatusIndexed, byName["gophers.pdf"].Status)
		assert.Equal(t, 1, byName["gophers.pdf"].ChunkCount)
		assert.Equal(t, model.StatusFailed, byName["broken.pdf"].Status)
		assert.NotContains(t, byName, "notes.txt")
	})

	t.Run("AskQuestion", func(t *testing.T) {
		body := `{"messages":[{"role":"user","content":"Hi"},{"role":"ai","content":"Hello"},{"role":"user","content":"What are gophers?"}]}`
		resp, err := http.Post(server.URL+"/chat", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out model.ChatResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "<think>reading</think>The paper is about gophers.", out.Response)

		ollama.mu.Lock()
		defer ollama.mu.Unlock()
		require.NotEmpty(t, ollama.lastChat)
		prompt := ollama.lastChat[len(ollama.lastChat)-1]["content"]
		assert.Contains(t, prompt, "Query: What are gophers?")
		assert.Contains(t, prompt, "Gophers are burrowing rodents.")
		assert.Equal(t, []string{"deepseek-r1:1.5b"}, ollama.loads)
	})

	t.Run("ReuploadKeepsEarlierChunks", func(t *testing.T) {
		revised := pdftest.Build("Gophers now live on the moon.")
		resp := uploadRequest(t, server.URL, "gophers.pdf", revised)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		stored, err := os.ReadFile(filepath.Join(cfg.StoragePath, storage.KeyFor("gophers.pdf")+".pdf"))
		require.NoError(t, err)
		assert.Equal(t, revised, stored)

		body := `{"messages":[{"role":"user","content":"Where do gophers live?"}]}`
		chatResp, err := http.Post(server.URL+"/chat", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer chatResp.Body.Close()
		require.Equal(t, http.StatusOK, chatResp.StatusCode)

		ollama.mu.Lock()
		defer ollama.mu.Unlock()
		prompt := ollama.lastChat[len(ollama.lastChat)-1]["content"]
		assert.Contains(t, prompt, "Gophers now live on the moon.")
		assert.Contains(t, prompt, "Gophers are burrowing rodents.", "chunks of the first upload stay searchable")
	})

	t.Run("ModelStatus", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/models")
		require.NoError(t, err)
		defer resp.Body.Close()

		var status model.ModelStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
		assert.Equal(t, "deepseek-r1:1.5b", status.Active)
		assert.Equal(t, []string{"deepseek-r1:1.5b"}, status.Loaded)
	})
}
