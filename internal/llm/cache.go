package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// ModelCache keeps every loaded model handle keyed by model ID, so switching
// back to a model that was used before does not load it again. Concurrent
// requests for a model that is not loaded yet share a single load.
type ModelCache struct {
	loader    Loader
	defaultID string

	mu     sync.RWMutex
	models map[string]Model
	active string

	loads singleflight.Group
}

func NewModelCache(loader Loader, defaultID string) *ModelCache {
	return &ModelCache{
		loader:    loader,
		defaultID: defaultID,
		models:    make(map[string]Model),
	}
}

// Get returns the handle for id, loading it on first use. An empty id selects
// the default model. The returned model becomes the active one.
func (c *ModelCache) Get(ctx context.Context, id string) (Model, error) {
	if id == "" {
		id = c.defaultID
	}

	c.mu.RLock()
	m, ok := c.models[id]
	c.mu.RUnlock()

	if !ok {
		v, err, _ := c.loads.Do(id, func() (any, error) {
			c.mu.RLock()
			cached, ok := c.models[id]
			c.mu.RUnlock()
			if ok {
				return cached, nil
			}

			slog.Info("Loading language model", "model", id)
			loaded, err := c.loader.Load(ctx, id)
			if err != nil {
				return nil, err
			}
			metrics.ModelLoads.WithLabelValues(id).Inc()

			c.mu.Lock()
			c.models[id] = loaded
			c.mu.Unlock()
			return loaded, nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load model %q: %w", id, err)
		}
		m = v.(Model)
	}

	c.mu.Lock()
	if c.active != id {
		slog.Info("Switched active model", "from", c.active, "to", id)
		c.active = id
	}
	c.mu.Unlock()
	return m, nil
}

// Status lists the loaded models and the one used last.
func (c *ModelCache) Status() model.ModelStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	loaded := make([]string, 0, len(c.models))
	for id := range c.models {
		loaded = append(loaded, id)
	}
	sort.Strings(loaded)

	active := c.active
	if active == "" {
		active = c.defaultID
	}
	return model.ModelStatus{Active: active, Loaded: loaded}
}
