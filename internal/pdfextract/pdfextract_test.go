package pdfextract

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/pdfextract/pdftest"
)

func TestExtractor_Extract(t *testing.T) {
	data := pdftest.Build("Retrieval augmented generation", "", "Second (page) text")

	pages, err := New().Extract(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, pages, 3)

	assert.Equal(t, 1, pages[0].Number)
	assert.Contains(t, pages[0].Text, "Retrieval augmented generation")
	assert.Empty(t, strings.TrimSpace(pages[1].Text))
	assert.Equal(t, 3, pages[2].Number)
	assert.Contains(t, pages[2].Text, "Second (page) text")
}

func TestExtractor_Extract_Cancelled(t *testing.T) {
	data := pdftest.Build("one", "two")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pages, err := New().Extract(ctx, bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, app_errors.ErrExtraction)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, pages)
}

func TestExtractor_Extract_Invalid(t *testing.T) {
	extractor := New()
	ctx := context.Background()

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "Empty", data: nil},
		{name: "NotAPDF", data: []byte("this is plain text, not a pdf document")},
		{name: "TruncatedHeader", data: []byte("%PDF-1.4\n%%EOF")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pages, err := extractor.Extract(ctx, bytes.NewReader(tc.data), int64(len(tc.data)))

			assert.Error(t, err)
			assert.True(t, errors.Is(err, app_errors.ErrExtraction))
			assert.Nil(t, pages)
		})
	}
}
