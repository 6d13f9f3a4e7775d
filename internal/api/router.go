package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "github.com/AlthariqFairuz/QA-RAG-with-deepseek/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/metrics"
)

// RouterConfig holds the settings the router needs beyond its handlers.
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(cfg RouterConfig, docHandler *DocumentHandler, chatHandler *ChatHandler, modelHandler *ModelHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodOptions, http.MethodHead,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Public Routes ---
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	// Registry lookups are quick and get a request timeout.
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))

		r.Get("/documents", docHandler.HandleListDocuments)
		r.Get("/documents/{documentID}", docHandler.HandleGetDocument)
		r.Get("/models", modelHandler.HandleModelStatus)
	})

	// Ingestion and generation may wait on a cold model load, so they run
	// without a timeout and stop only when the client goes away.
	r.Group(func(r chi.Router) {
		r.Post("/upload", docHandler.HandleUpload)
		r.Post("/chat", chatHandler.HandleChat)
	})

	return r
}
