package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

func TestFileStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesRootAndWritesBytes", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "document_store", "pdfs")
		store := NewFileStore(root)

		doc, err := store.Save(ctx, "paper.pdf", strings.NewReader("%PDF-1.4 body"))
		require.NoError(t, err)

		assert.Equal(t, "paper.pdf", doc.FileName)
		assert.Equal(t, KeyFor("paper.pdf"), doc.ID)
		assert.Equal(t, filepath.Join(root, doc.ID+".pdf"), doc.Path)
		assert.Equal(t, int64(len("%PDF-1.4 body")), doc.SizeBytes)
		assert.Equal(t, model.StatusStored, doc.Status)

		data, err := os.ReadFile(doc.Path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 body", string(data))
	})

	t.Run("SameNameOverwrites", func(t *testing.T) {
		store := NewFileStore(t.TempDir())

		first, err := store.Save(ctx, "report.pdf", strings.NewReader("first"))
		require.NoError(t, err)
		second, err := store.Save(ctx, "report.pdf", strings.NewReader("second"))
		require.NoError(t, err)

		assert.Equal(t, first.Path, second.Path)
		data, err := os.ReadFile(second.Path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))

		entries, err := os.ReadDir(store.Root())
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files must not be left behind")
	})

	t.Run("TraversalNamesStayInsideRoot", func(t *testing.T) {
		root := t.TempDir()
		store := NewFileStore(root)

		doc, err := store.Save(ctx, "../../etc/passwd.pdf", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, root, filepath.Dir(doc.Path))
	})

	t.Run("EmptyName", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		_, err := store.Save(ctx, "", strings.NewReader("x"))
		assert.True(t, errors.Is(err, app_errors.ErrStorage))
	})

	t.Run("UnwritableRoot", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
		store := NewFileStore(filepath.Join(blocker, "pdfs"))

		_, err := store.Save(ctx, "a.pdf", strings.NewReader("x"))
		assert.True(t, errors.Is(err, app_errors.ErrStorage))
	})

	t.Run("CancelledContext", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Save(cctx, "a.pdf", strings.NewReader("x"))
		assert.True(t, errors.Is(err, app_errors.ErrStorage))
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, KeyFor("a.pdf"), KeyFor("a.pdf"))
	assert.NotEqual(t, KeyFor("a.pdf"), KeyFor("b.pdf"))
	assert.NotContains(t, KeyFor("../x.pdf"), "/")
}

func TestFileStore_Open(t *testing.T) {
	store := NewFileStore(t.TempDir())
	doc, err := store.Save(context.Background(), "a.pdf", strings.NewReader("%PDF-1.7"))
	require.NoError(t, err)

	f, err := store.Open(doc)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, 4)
	_, err = f.ReadAt(buf, 1)
	require.NoError(t, err)
	assert.Equal(t, "PDF-", string(buf))

	_, err = store.Open(&model.UploadedDocument{Path: filepath.Join(store.Root(), "missing.pdf")})
	assert.ErrorIs(t, err, app_errors.ErrStorage)
}
