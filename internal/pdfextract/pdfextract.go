// Package pdfextract turns PDF bytes into per-page plain text.
package pdfextract

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ledongthuc/pdf"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// Extractor reads text out of PDF documents.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text of every page, in page order.
// A document without any text layer yields no pages and no error.
func (e *Extractor) Extract(ctx context.Context, r io.ReaderAt, size int64) (pages []model.Page, err error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: empty file", app_errors.ErrExtraction)
	}

	// The PDF parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			pages = nil
			err = fmt.Errorf("%w: malformed pdf: %v", app_errors.ErrExtraction, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrExtraction, err)
	}

	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", app_errors.ErrExtraction, err)
		}

		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", app_errors.ErrExtraction, i, err)
		}
		pages = append(pages, model.Page{Number: i, Text: text})
	}

	slog.Debug("Extracted pdf text", "pages_total", total, "pages_with_text", len(pages))
	return pages, nil
}
