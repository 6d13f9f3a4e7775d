package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/api"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/config"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/database"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/index"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/llm"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/pdfextract"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/repository"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/service"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/storage"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/textsplit"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/watcher"
	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// App holds the wired application and the resources it must release.
type App struct {
	DB      *sql.DB
	Server  *http.Server
	Watcher *watcher.Watcher
	Redis   *redis.Client
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.WaitForProvider && cfg.LLMProvider == config.ProviderOllama {
		if err := waitForOllama(ctx, llm.NewOllamaProvider(cfg.OllamaURL)); err != nil {
			slog.Error("Gave up waiting for Ollama", "error", err)
			return 1
		}
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	if err := app.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

// NewApp wires every component from cfg. The returned App owns the database
// and any Redis connection; call Close when done.
func NewApp(cfg *config.Config) (app *App, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app = &App{}
	defer func() {
		if err != nil && app != nil {
			app.Close()
			app = nil
		}
	}()

	app.DB, err = database.InitDB(cfg.DatabasePath)
	if err != nil {
		return app, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	loader, embedder, err := newProvider(cfg)
	if err != nil {
		return app, err
	}

	idx, err := app.newIndex(cfg)
	if err != nil {
		return app, err
	}

	splitter, err := textsplit.NewRecursive(textsplit.DefaultChunkSize, textsplit.DefaultChunkOverlap)
	if err != nil {
		return app, err
	}

	repo := repository.NewSQLiteRepository(app.DB)
	store := storage.NewFileStore(cfg.StoragePath)
	models := llm.NewModelCache(loader, cfg.DefaultModel)
	pool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueWait)

	processor := service.NewProcessor(store, pdfextract.New(), splitter, embedder, idx, cfg.EmbedConcurrency)
	generator := service.NewGenerator(models, embedder, idx, cfg.TopK)

	documentService := service.NewDocumentService(store, repo, processor, pool)
	chatService := service.NewChatService(generator, pool)
	modelService := service.NewModelService(models)

	router := api.NewRouter(
		api.RouterConfig{AllowedOrigins: cfg.AllowedOrigins, RequestTimeout: cfg.RequestTimeout},
		api.NewDocumentHandler(documentService, cfg.MaxUploadBytes),
		api.NewChatHandler(chatService),
		api.NewModelHandler(modelService),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Uploads and generation can outlast any fixed limit.
		IdleTimeout:       120 * time.Second,
	}

	if cfg.WatchDir != "" {
		app.Watcher, err = watcher.New(cfg.WatchDir, documentService, watcher.DefaultDebounce)
		if err != nil {
			return app, err
		}
	}

	slog.Info("Application wired",
		"llm_provider", cfg.LLMProvider,
		"index_backend", cfg.IndexBackend,
		"default_model", cfg.DefaultModel,
		"embedding_model", cfg.EmbeddingModel,
		"storage_path", cfg.StoragePath,
		"watch_dir", cfg.WatchDir,
	)
	return app, nil
}

// Serve runs the HTTP server and the inbox watcher until ctx is cancelled,
// then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	watchDone := make(chan struct{})
	if a.Watcher != nil {
		go func() {
			defer close(watchDone)
			if err := a.Watcher.Run(ctx); err != nil {
				slog.Error("Inbox watcher stopped", "error", err)
			}
		}()
	} else {
		close(watchDone)
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var err error
	select {
	case err = <-serveErr:
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if sErr := a.Server.Shutdown(shutdownCtx); sErr != nil {
			err = fmt.Errorf("graceful shutdown failed: %w", sErr)
		}
	}

	if a.Watcher != nil {
		if cErr := a.Watcher.Close(); cErr != nil {
			slog.Warn("Failed to close inbox watcher", "error", cErr)
		}
	}
	<-watchDone
	return err
}

// Close releases the database and Redis connections. It is safe to call on a
// partially built App.
func (a *App) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}
}

// newProvider builds the model loader and embedder for the configured backend.
func newProvider(cfg *config.Config) (llm.Loader, llm.Embedder, error) {
	switch cfg.LLMProvider {
	case config.ProviderOllama:
		p := llm.NewOllamaProvider(cfg.OllamaURL)
		return p, llm.NewOllamaEmbedder(p, cfg.EmbeddingModel), nil
	case config.ProviderOpenAI:
		p := llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		return p, llm.NewOpenAIEmbedder(p, cfg.EmbeddingModel), nil
	default:
		return nil, nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

func (a *App) newIndex(cfg *config.Config) (index.Index, error) {
	if cfg.IndexBackend != config.IndexRedis {
		return index.NewMemoryIndex(), nil
	}

	a.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr)
	return index.NewRedisIndex(a.Redis, cfg.RedisKeyPrefix), nil
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// pinger is the part of the Ollama client the startup probe needs.
type pinger interface {
	Ping(ctx context.Context) error
}

// waitForOllama polls until Ollama answers or ctx is cancelled.
func waitForOllama(ctx context.Context, p pinger) error {
	const retryInterval = 3 * time.Second
	slog.Info("Waiting for Ollama to be ready...")
	for {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := p.Ping(pingCtx)
		cancel()
		if err == nil {
			slog.Info("Ollama is ready.")
			return nil
		}
		slog.Debug("Ollama not ready yet, retrying...", "retry_in", retryInterval, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}
