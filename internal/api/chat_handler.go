package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/interfaces"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// maxChatBodyBytes caps a /chat body. The client resends the whole
// conversation on every turn, so the limit is on bytes, not on messages.
const maxChatBodyBytes = 8 << 20

// ChatHandler handles question answering over the indexed documents.
type ChatHandler struct {
	service interfaces.ChatService
}

// NewChatHandler creates a new ChatHandler with the given chat service.
func NewChatHandler(s interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: s}
}

// HandleChat godoc
// @Summary      Ask a question
// @Description  Answers the last user message using context retrieved from uploaded documents.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body  model.ChatRequest  true  "Conversation"
// @Success      200  {object}  model.ChatResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondWithError(w, fmt.Errorf("%w: request body exceeds the %d byte limit", app_errors.ErrTooLarge, maxErr.Limit))
			return
		}
		respondWithError(w, fmt.Errorf("%w: invalid request body: %v", app_errors.ErrValidation, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	answer, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, model.ChatResponse{Response: answer})
}
