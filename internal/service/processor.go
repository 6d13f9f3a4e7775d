package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/index"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/llm"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/storage"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/textsplit"
)

// embedBatchSize is the number of chunks sent in one embedding request.
const embedBatchSize = 16

// pageSeparator joins page texts before splitting.
const pageSeparator = "\n\n"

// DocumentStore persists uploaded files.
type DocumentStore interface {
	Save(ctx context.Context, fileName string, content io.Reader) (*model.UploadedDocument, error)
	Open(doc *model.UploadedDocument) (storage.File, error)
}

// TextExtractor reads per-page text out of a PDF.
type TextExtractor interface {
	Extract(ctx context.Context, r io.ReaderAt, size int64) ([]model.Page, error)
}

// Processor turns a stored PDF into indexed chunks: extract, split, embed, add.
type Processor struct {
	store            DocumentStore
	extractor        TextExtractor
	splitter         *textsplit.Recursive
	embedder         llm.Embedder
	index            index.Index
	embedConcurrency int
}

func NewProcessor(store DocumentStore, extractor TextExtractor, splitter *textsplit.Recursive, embedder llm.Embedder, idx index.Index, embedConcurrency int) *Processor {
	if embedConcurrency <= 0 {
		embedConcurrency = 1
	}
	return &Processor{
		store:            store,
		extractor:        extractor,
		splitter:         splitter,
		embedder:         embedder,
		index:            idx,
		embedConcurrency: embedConcurrency,
	}
}

// Process indexes doc and returns the number of chunks added. Nothing is added
// to the index unless every chunk was embedded. A document without text is
// not an error and yields zero chunks.
func (p *Processor) Process(ctx context.Context, doc *model.UploadedDocument) (int, error) {
	start := time.Now()

	chunks, err := p.chunk(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", app_errors.ErrProcessing, err)
	}
	if len(chunks) == 0 {
		slog.Warn("Document has no extractable text", "file_name", doc.FileName, "document_id", doc.ID)
		return 0, nil
	}

	vectors, err := p.embed(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to embed chunks: %w", app_errors.ErrProcessing, err)
	}

	entries := make([]model.IndexEntry, len(chunks))
	for i := range chunks {
		entries[i] = model.IndexEntry{DocumentChunk: chunks[i], Embedding: vectors[i]}
	}
	if err := p.index.Add(ctx, entries); err != nil {
		return 0, fmt.Errorf("%w: failed to add chunks to index: %w", app_errors.ErrProcessing, err)
	}

	metrics.ChunksIndexed.Add(float64(len(entries)))
	metrics.IngestDuration.Observe(time.Since(start).Seconds())
	slog.Info("Indexed document", "file_name", doc.FileName, "document_id", doc.ID, "chunks", len(entries), "duration", time.Since(start))
	return len(entries), nil
}

func (p *Processor) chunk(ctx context.Context, doc *model.UploadedDocument) ([]model.DocumentChunk, error) {
	f, err := p.store.Open(doc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pages, err := p.extractor.Extract(ctx, f, doc.SizeBytes)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(pages))
	for i, page := range pages {
		texts[i] = page.Text
	}

	pieces := p.splitter.Split(strings.Join(texts, pageSeparator))
	chunks := make([]model.DocumentChunk, 0, len(pieces))
	for _, piece := range pieces {
		chunks = append(chunks, model.DocumentChunk{
			ID:         uuid.NewString(),
			DocumentID: doc.ID,
			Source:     doc.Path,
			Text:       piece.Text,
			StartIndex: piece.StartIndex,
		})
	}
	return chunks, nil
}

// embed computes one vector per chunk, running up to embedConcurrency batch
// requests at once. The result is in chunk order.
func (p *Processor) embed(ctx context.Context, chunks []model.DocumentChunk) ([][]float32, error) {
	vectors := make([][]float32, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.embedConcurrency)
	for start := 0; start < len(chunks); start += embedBatchSize {
		start := start
		end := min(start+embedBatchSize, len(chunks))
		g.Go(func() error {
			texts := make([]string, 0, end-start)
			for _, c := range chunks[start:end] {
				texts = append(texts, c.Text)
			}
			batch, err := p.embedder.EmbedBatch(gctx, texts)
			if err != nil {
				return err
			}
			if len(batch) != len(texts) {
				return fmt.Errorf("embedder returned %d vectors for %d chunks", len(batch), len(texts))
			}
			copy(vectors[start:end], batch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}
