package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth: when true, requests must carry a bearer token. Only the header
	// format is checked; credential validation belongs to the gateway.
	RequireAuth bool

	// Document acquisition
	FetchTimeout     time.Duration
	MaxDocumentBytes int64

	// Segmentation
	MaxPages       int
	MinClauseWords int

	// Ranking and selection
	TopK                      int
	ScoreThreshold            float64
	SentenceFallbackThreshold float64
	MinAnswerWords            int
	MinSummaryWords           int

	// Request limits
	MaxQuestions int

	// Embedding backend: "tfidf" (local, default) or "openai".
	Embedder      string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAIAPIKey  string
	OpenAITimeout time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		RequireAuth: envBool("REQUIRE_AUTH", false),

		FetchTimeout:     envDuration("FETCH_TIMEOUT", 30*time.Second),
		MaxDocumentBytes: envInt64("MAX_DOCUMENT_BYTES", 52428800), // 50MB

		MaxPages:       envInt("MAX_PAGES", 25),
		MinClauseWords: envInt("MIN_CLAUSE_WORDS", 8),

		TopK:                      envInt("TOP_K", 1),
		ScoreThreshold:            envFloat("SCORE_THRESHOLD", 0.3),
		SentenceFallbackThreshold: envFloat("SENTENCE_FALLBACK_THRESHOLD", 0.15),
		MinAnswerWords:            envInt("MIN_ANSWER_WORDS", 6),
		MinSummaryWords:           envInt("MIN_SUMMARY_WORDS", 8),

		MaxQuestions: envInt("MAX_QUESTIONS", 50),

		Embedder:      envOr("EMBEDDER", "tfidf"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   envOr("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAITimeout: envDuration("OPENAI_TIMEOUT", 30*time.Second),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 52428800
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 25
	}
	if cfg.MinClauseWords <= 0 {
		cfg.MinClauseWords = 8
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 1
	}
	if cfg.MaxQuestions <= 0 {
		cfg.MaxQuestions = 50
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.Embedder {
	case "tfidf":
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when EMBEDDER=openai")
		}
	default:
		return fmt.Errorf("unknown EMBEDDER %q (want tfidf or openai)", c.Embedder)
	}
	if c.ScoreThreshold < -1 || c.ScoreThreshold > 1 {
		return fmt.Errorf("SCORE_THRESHOLD must be within [-1,1], got %v", c.ScoreThreshold)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
