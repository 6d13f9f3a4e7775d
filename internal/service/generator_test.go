package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/index"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/llm"
	llm_mocks "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/llm/mocks"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/service"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/service/mocks"
)

func indexWith(t *testing.T, entries ...model.IndexEntry) *index.MemoryIndex {
	t.Helper()
	idx := index.NewMemoryIndex()
	require.NoError(t, idx.Add(context.Background(), entries))
	return idx
}

func chunkEntry(text string, vec ...float32) model.IndexEntry {
	return model.IndexEntry{DocumentChunk: model.DocumentChunk{ID: text, Text: text, Source: "store/doc.pdf"}, Embedding: vec}
}

func TestBuildPrompt(t *testing.T) {
	msgs := service.BuildPrompt("What is X?", "X is a letter.")

	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, "You are an expert research assistant. Use the provided context to answer the query. If unsure, state that you don't know. Be concise and factual in your responses.", msgs[0].Content)
	assert.Equal(t, llm.RoleUser, msgs[1].Role)
	assert.Equal(t, "Query: What is X?\nContext: X is a letter.\nAnswer:", msgs[1].Content)
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("JoinsTopKChunksInIndexOrder", func(t *testing.T) {
		models := mocks.NewMockModelProvider(t)
		embedder := llm_mocks.NewMockEmbedder(t)
		m := llm_mocks.NewMockModel(t)
		idx := indexWith(t,
			chunkEntry("far", 0, 1),
			chunkEntry("closest", 1, 0),
			chunkEntry("close", 1, 0.5),
		)
		gen := service.NewGenerator(models, embedder, idx, 2)

		models.On("Get", mock.Anything, "deepseek-r1:7b").Return(m, nil).Once()
		embedder.On("Embed", mock.Anything, "what?").Return([]float32{1, 0}, nil).Once()
		m.On("Name").Return("deepseek-r1:7b")
		m.On("Generate", mock.Anything, service.BuildPrompt("what?", "closest\n\nclose")).Return("<think>hm</think>answer", nil).Once()

		answer, err := gen.Generate(ctx, "what?", "deepseek-r1:7b")
		require.NoError(t, err)
		assert.Equal(t, "<think>hm</think>answer", answer, "model output is returned untouched")
	})

	t.Run("EmptyIndexStillAsksModel", func(t *testing.T) {
		models := mocks.NewMockModelProvider(t)
		embedder := llm_mocks.NewMockEmbedder(t)
		m := llm_mocks.NewMockModel(t)
		gen := service.NewGenerator(models, embedder, index.NewMemoryIndex(), 4)

		models.On("Get", mock.Anything, "").Return(m, nil).Once()
		embedder.On("Embed", mock.Anything, "hello").Return([]float32{1}, nil).Once()
		m.On("Name").Return("deepseek-r1:1.5b")
		m.On("Generate", mock.Anything, service.BuildPrompt("hello", "")).Return("I don't know.", nil).Once()

		answer, err := gen.Generate(ctx, "hello", "")
		require.NoError(t, err)
		assert.Equal(t, "I don't know.", answer)
	})

	t.Run("ModelLoadFailure", func(t *testing.T) {
		models := mocks.NewMockModelProvider(t)
		gen := service.NewGenerator(models, llm_mocks.NewMockEmbedder(t), index.NewMemoryIndex(), 4)
		models.On("Get", mock.Anything, "missing").Return(nil, errors.New("model not found")).Once()

		_, err := gen.Generate(ctx, "q", "missing")
		assert.ErrorIs(t, err, app_errors.ErrGeneration)
		assert.Contains(t, err.Error(), "model not found")
	})

	t.Run("EmbeddingFailure", func(t *testing.T) {
		models := mocks.NewMockModelProvider(t)
		embedder := llm_mocks.NewMockEmbedder(t)
		gen := service.NewGenerator(models, embedder, index.NewMemoryIndex(), 4)
		models.On("Get", mock.Anything, "").Return(llm_mocks.NewMockModel(t), nil).Once()
		embedder.On("Embed", mock.Anything, "q").Return(nil, errors.New("timeout")).Once()

		_, err := gen.Generate(ctx, "q", "")
		assert.ErrorIs(t, err, app_errors.ErrGeneration)
	})

	t.Run("InferenceFailure", func(t *testing.T) {
		models := mocks.NewMockModelProvider(t)
		embedder := llm_mocks.NewMockEmbedder(t)
		m := llm_mocks.NewMockModel(t)
		gen := service.NewGenerator(models, embedder, index.NewMemoryIndex(), 4)
		models.On("Get", mock.Anything, "").Return(m, nil).Once()
		embedder.On("Embed", mock.Anything, "q").Return([]float32{1}, nil).Once()
		m.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("connection reset")).Once()

		_, err := gen.Generate(ctx, "q", "")
		assert.ErrorIs(t, err, app_errors.ErrGeneration)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
