package service

import (
	"context"
	"errors"
	"fmt"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// AnswerGenerator produces an answer for a query with the given model.
type AnswerGenerator interface {
	Generate(ctx context.Context, query, modelID string) (string, error)
}

// ChatService answers the latest user turn of a conversation.
type ChatService struct {
	generator AnswerGenerator
	pool      JobRunner
}

func NewChatService(generator AnswerGenerator, pool JobRunner) *ChatService {
	return &ChatService{generator: generator, pool: pool}
}

// Chat picks the last message with role "user" as the query. Earlier turns are
// not sent to the model.
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (string, error) {
	query, err := LastUserMessage(req.Messages)
	if err != nil {
		metrics.ChatRequests.WithLabelValues("rejected").Inc()
		return "", err
	}

	var answer string
	err = s.pool.Do(ctx, func(ctx context.Context) error {
		var err error
		answer, err = s.generator.Generate(ctx, query, req.Model)
		return err
	})
	if err != nil {
		status := "failed"
		if errors.Is(err, app_errors.ErrBusy) {
			status = "busy"
		}
		metrics.ChatRequests.WithLabelValues(status).Inc()
		return "", err
	}

	metrics.ChatRequests.WithLabelValues("ok").Inc()
	return answer, nil
}

// LastUserMessage returns the content of the last user turn in messages.
func LastUserMessage(messages []model.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("%w: No messages provided", app_errors.ErrValidation)
	}
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleUser {
			return messages[i].Content, nil
		}
	}
	return "", fmt.Errorf("%w: No user messages provided", app_errors.ErrValidation)
}
