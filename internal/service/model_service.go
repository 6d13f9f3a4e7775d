package service

import (
	"context"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// ModelRegistry reports which models are resident.
type ModelRegistry interface {
	Status() model.ModelStatus
}

// ModelService exposes the state of the model cache.
type ModelService struct {
	registry ModelRegistry
}

// NewModelService creates a new ModelService.
func NewModelService(registry ModelRegistry) *ModelService {
	return &ModelService{registry: registry}
}

// Status returns the active model and every loaded one.
func (s *ModelService) Status(_ context.Context) (*model.ModelStatus, error) {
	status := s.registry.Status()
	return &status, nil
}
