// Package watcher ingests PDFs dropped into an inbox directory.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/model"
)

// DefaultDebounce is how long a file must stay quiet before it is ingested.
const DefaultDebounce = 500 * time.Millisecond

// Ingestor accepts a named document stream. The document service satisfies it.
type Ingestor interface {
	Upload(ctx context.Context, fileName string, content io.Reader) (*model.UploadResult, error)
}

// Watcher feeds new or rewritten PDFs in a directory to an Ingestor.
type Watcher struct {
	fs       *fsnotify.Watcher
	dir      string
	ingestor Ingestor
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
}

// New starts watching dir. Call Run to process events and Close to release
// the underlying watcher.
func New(dir string, ingestor Ingestor, debounce time.Duration) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create watch directory: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fs:       fsw,
		dir:      dir,
		ingestor: ingestor,
		debounce: debounce,
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
// Ingestion is serialized on a single goroutine; Run waits for it to drain
// before returning.
func (w *Watcher) Run(ctx context.Context) error {
	ready := make(chan string, 64)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for path := range ready {
			w.ingest(ctx, path)
		}
	}()

	defer func() {
		w.mu.Lock()
		w.closed = true
		for path, timer := range w.pending {
			timer.Stop()
			delete(w.pending, path)
		}
		close(ready)
		w.mu.Unlock()
		<-drained
	}()

	slog.Info("Watching directory for PDFs", "dir", w.dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !isPDF(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.schedule(event.Name, ready)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", "dir", w.dir, "error", err)
		}
	}
}

// schedule (re)arms the debounce timer for path.
func (w *Watcher) schedule(path string, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.pending, path)
		if w.closed {
			return
		}
		select {
		case ready <- path:
		default:
			slog.Warn("Ingest queue full, dropping file", "path", path)
		}
	})
}

func (w *Watcher) ingest(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Failed to open watched file", "path", path, "error", err)
		}
		return
	}
	defer func() {
		if cErr := f.Close(); cErr != nil {
			slog.Warn("Failed to close watched file", "path", path, "error", cErr)
		}
	}()

	result, err := w.ingestor.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		slog.Error("Failed to ingest watched file", "path", path, "error", err)
		return
	}
	slog.Info("Ingested watched file", "path", path, "document_id", result.Document.ID, "chunks", result.Document.ChunkCount)
}

// Close stops the underlying file watcher; a running Run returns shortly after.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func isPDF(path string) bool {
	return filepath.Ext(path) == ".pdf"
}
