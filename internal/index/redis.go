package index

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// RedisIndex persists entries as JSON in a Redis list so they survive restarts.
// Search loads every entry and ranks them locally.
type RedisIndex struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisIndex(rdb *redis.Client, prefix string) *RedisIndex {
	return &RedisIndex{rdb: rdb, prefix: prefix}
}

func (r *RedisIndex) entriesKey() string { return fmt.Sprintf("%s:index:entries", r.prefix) }

// Add appends the batch in a single MULTI/EXEC so readers never see half of it.
func (r *RedisIndex) Add(ctx context.Context, entries []model.IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}
	values, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	pipe := r.rdb.TxPipeline()
	pipe.RPush(ctx, r.entriesKey(), values...)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("could not append index entries: %w", err)
	}
	return nil
}

func (r *RedisIndex) Search(ctx context.Context, query []float32, k int) ([]model.ScoredChunk, error) {
	raw, err := r.rdb.LRange(ctx, r.entriesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("could not read index entries: %w", err)
	}
	entries, err := decodeEntries(raw)
	if err != nil {
		return nil, err
	}
	return rank(entries, query, k), nil
}

func (r *RedisIndex) Len(ctx context.Context) (int, error) {
	n, err := r.rdb.LLen(ctx, r.entriesKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("could not count index entries: %w", err)
	}
	return int(n), nil
}

func encodeEntries(entries []model.IndexEntry) ([]any, error) {
	values := make([]any, len(entries))
	for i, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("could not encode entry %s: %w", e.ID, err)
		}
		values[i] = string(b)
	}
	return values, nil
}

func decodeEntries(raw []string) ([]model.IndexEntry, error) {
	entries := make([]model.IndexEntry, len(raw))
	for i, s := range raw {
		if err := json.Unmarshal([]byte(s), &entries[i]); err != nil {
			return nil, fmt.Errorf("could not decode entry %d: %w", i, err)
		}
	}
	return entries, nil
}
