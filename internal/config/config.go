package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported values for LLM_PROVIDER.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Supported values for INDEX_BACKEND.
const (
	IndexMemory = "memory"
	IndexRedis  = "redis"
)

type Config struct {
	AppPort          int           `mapstructure:"APP_PORT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	LLMProvider      string        `mapstructure:"LLM_PROVIDER"`
	OllamaURL        string        `mapstructure:"OLLAMA_URL"`
	OpenAIAPIKey     string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL    string        `mapstructure:"OPENAI_BASE_URL"`
	EmbeddingModel   string        `mapstructure:"EMBEDDING_MODEL"`
	DefaultModel     string        `mapstructure:"DEFAULT_MODEL"`
	AllowedOrigins   []string      `mapstructure:"ALLOWED_ORIGINS"`
	StoragePath      string        `mapstructure:"STORAGE_PATH"`
	DatabasePath     string        `mapstructure:"DATABASE_PATH"`
	IndexBackend     string        `mapstructure:"INDEX_BACKEND"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	RedisKeyPrefix   string        `mapstructure:"REDIS_KEY_PREFIX"`
	TopK             int           `mapstructure:"TOP_K"`
	WorkerPoolSize   int           `mapstructure:"WORKER_POOL_SIZE"`
	WorkerQueueWait  time.Duration `mapstructure:"WORKER_QUEUE_WAIT"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	EmbedConcurrency int           `mapstructure:"EMBED_CONCURRENCY"`
	MaxUploadBytes   int64         `mapstructure:"MAX_UPLOAD_BYTES"`
	WatchDir         string        `mapstructure:"WATCH_DIR"`
	WaitForProvider  bool          `mapstructure:"WAIT_FOR_PROVIDER"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LLM_PROVIDER", ProviderOllama)
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("EMBEDDING_MODEL", "deepseek-r1:1.5b")
	v.SetDefault("DEFAULT_MODEL", "deepseek-r1:1.5b")
	v.SetDefault("ALLOWED_ORIGINS", "https://qa-rag-with-deepseek.vercel.app,http://localhost:3000")
	v.SetDefault("STORAGE_PATH", "document_store/pdfs")
	v.SetDefault("DATABASE_PATH", "data/qa-rag.db")
	v.SetDefault("INDEX_BACKEND", IndexMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "qa-rag")
	v.SetDefault("TOP_K", 4)
	v.SetDefault("WORKER_POOL_SIZE", 4)
	v.SetDefault("WORKER_QUEUE_WAIT", "0s")
	v.SetDefault("REQUEST_TIMEOUT", "60s")
	v.SetDefault("EMBED_CONCURRENCY", 2)
	v.SetDefault("MAX_UPLOAD_BYTES", 32<<20)
	v.SetDefault("WATCH_DIR", "")
	v.SetDefault("WAIT_FOR_PROVIDER", true)
}

// LoadConfig reads configuration from an optional .env file and the environment,
// environment variables taking precedence over the file.
func LoadConfig() (*Config, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	// Env values arrive as one comma separated string.
	cfg.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOllama, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLMProvider)
	}
	switch c.IndexBackend {
	case IndexMemory, IndexRedis:
	default:
		return fmt.Errorf("unknown INDEX_BACKEND %q", c.IndexBackend)
	}
	if c.LLMProvider == ProviderOpenAI && c.OpenAIAPIKey == "" && c.OpenAIBaseURL == "" {
		return fmt.Errorf("OPENAI_API_KEY or OPENAI_BASE_URL is required for the openai provider")
	}
	if c.TopK <= 0 {
		return fmt.Errorf("TOP_K must be positive, got %d", c.TopK)
	}
	if c.WorkerPoolSize <= 0 {
		return fmt.Errorf("WORKER_POOL_SIZE must be positive, got %d", c.WorkerPoolSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.EmbedConcurrency <= 0 {
		return fmt.Errorf("EMBED_CONCURRENCY must be positive, got %d", c.EmbedConcurrency)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.DefaultModel == "" || c.EmbeddingModel == "" {
		return fmt.Errorf("DEFAULT_MODEL and EMBEDDING_MODEL must be set")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
