package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/service"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/service/mocks"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/worker"
)

func TestLastUserMessage(t *testing.T) {
	testCases := []struct {
		name        string
		messages    []model.ChatMessage
		expected    string
		expectedErr string
	}{
		{
			name:     "SingleUserMessage",
			messages: []model.ChatMessage{{Role: "user", Content: "hi"}},
			expected: "hi",
		},
		{
			name: "LastUserWinsOverLaterAssistant",
			messages: []model.ChatMessage{
				{Role: "user", Content: "first"},
				{Role: "ai", Content: "reply"},
				{Role: "user", Content: "second"},
				{Role: "ai", Content: "another reply"},
			},
			expected: "second",
		},
		{
			name:        "Empty",
			messages:    nil,
			expectedErr: "No messages provided",
		},
		{
			name:        "NoUserTurn",
			messages:    []model.ChatMessage{{Role: "ai", Content: "hello"}, {Role: "system", Content: "x"}},
			expectedErr: "No user messages provided",
		},
		{
			name:     "RoleIsCaseSensitive",
			messages: []model.ChatMessage{{Role: "User", Content: "ignored"}, {Role: "user", Content: "used"}, {Role: "USER", Content: "ignored"}},
			expected: "used",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := service.LastUserMessage(tc.messages)
			if tc.expectedErr != "" {
				assert.ErrorIs(t, err, app_errors.ErrValidation)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestChatService_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("ForwardsQueryAndModel", func(t *testing.T) {
		gen := mocks.NewMockAnswerGenerator(t)
		svc := service.NewChatService(gen, worker.NewPool(1, 0))
		gen.On("Generate", mock.Anything, "what is RAG?", "deepseek-r1:7b").Return("Retrieval augmented generation.", nil).Once()

		answer, err := svc.Chat(ctx, &model.ChatRequest{
			Messages: []model.ChatMessage{{Role: "user", Content: "what is RAG?"}},
			Model:    "deepseek-r1:7b",
		})
		require.NoError(t, err)
		assert.Equal(t, "Retrieval augmented generation.", answer)
	})

	t.Run("ValidationHappensBeforeGeneration", func(t *testing.T) {
		gen := mocks.NewMockAnswerGenerator(t)
		svc := service.NewChatService(gen, worker.NewPool(1, 0))

		_, err := svc.Chat(ctx, &model.ChatRequest{Messages: []model.ChatMessage{}})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
		gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Busy", func(t *testing.T) {
		gen := mocks.NewMockAnswerGenerator(t)
		svc := service.NewChatService(gen, busyRunner{})

		_, err := svc.Chat(ctx, &model.ChatRequest{Messages: []model.ChatMessage{{Role: "user", Content: "q"}}})
		assert.ErrorIs(t, err, app_errors.ErrBusy)
	})

	t.Run("GenerationError", func(t *testing.T) {
		gen := mocks.NewMockAnswerGenerator(t)
		svc := service.NewChatService(gen, worker.NewPool(1, 0))
		gen.On("Generate", mock.Anything, "q", "").Return("", app_errors.ErrGeneration).Once()

		_, err := svc.Chat(ctx, &model.ChatRequest{Messages: []model.ChatMessage{{Role: "user", Content: "q"}}})
		assert.ErrorIs(t, err, app_errors.ErrGeneration)
	})
}

type staticRegistry struct{ status model.ModelStatus }

func (r staticRegistry) Status() model.ModelStatus { return r.status }

func TestModelService_Status(t *testing.T) {
	svc := service.NewModelService(staticRegistry{status: model.ModelStatus{Active: "deepseek-r1:7b", Loaded: []string{"deepseek-r1:1.5b", "deepseek-r1:7b"}}})

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "deepseek-r1:7b", status.Active)
	assert.Len(t, status.Loaded, 2)
}
