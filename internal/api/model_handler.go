package api

import (
	"net/http"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/interfaces"
)

// ModelHandler reports on the language models held by the server.
type ModelHandler struct {
	service interfaces.ModelService
}

func NewModelHandler(s interfaces.ModelService) *ModelHandler {
	return &ModelHandler{service: s}
}

// HandleModelStatus godoc
// @Summary      Show loaded models
// @Description  Returns the active model and every model currently held in memory.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  model.ModelStatus
// @Failure      500  {object}  ErrorResponse
// @Router       /models [get]
func (h *ModelHandler) HandleModelStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}
