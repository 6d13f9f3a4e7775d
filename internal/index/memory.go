package index

import (
	"context"
	"sync"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// MemoryIndex keeps entries in process memory. Contents are lost on restart.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries []model.IndexEntry
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

func (m *MemoryIndex) Add(_ context.Context, entries []model.IndexEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *MemoryIndex) Search(ctx context.Context, query []float32, k int) ([]model.ScoredChunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return rank(m.entries, query, k), nil
}

func (m *MemoryIndex) Len(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries), nil
}
