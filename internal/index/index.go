// Package index stores chunk embeddings and answers nearest-neighbour queries.
package index

import (
	"context"
	"math"
	"sort"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// Index is a vector store of document chunks. Implementations must be safe for
// concurrent use, and a Search must observe either all or none of an Add batch.
type Index interface {
	Add(ctx context.Context, entries []model.IndexEntry) error
	Search(ctx context.Context, query []float32, k int) ([]model.ScoredChunk, error)
	Len(ctx context.Context) (int, error)
}

// CosineSimilarity returns the cosine of the angle between a and b. Vectors of
// different length, or zero vectors, score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// rank scores every entry against query and returns the best k, highest first.
// Equal scores keep insertion order.
func rank(entries []model.IndexEntry, query []float32, k int) []model.ScoredChunk {
	if k <= 0 || len(entries) == 0 {
		return nil
	}
	scored := make([]model.ScoredChunk, len(entries))
	for i, e := range entries {
		scored[i] = model.ScoredChunk{DocumentChunk: e.DocumentChunk, Score: CosineSimilarity(query, e.Embedding)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
