package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/policyqa/internal/answer"
	"github.com/dgallion1/policyqa/internal/api"
	"github.com/dgallion1/policyqa/internal/config"
	"github.com/dgallion1/policyqa/internal/embed"
	"github.com/dgallion1/policyqa/internal/embed/openai"
	"github.com/dgallion1/policyqa/internal/embed/tfidf"
	"github.com/dgallion1/policyqa/internal/fetch"
	"github.com/dgallion1/policyqa/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Embedding backend: constructed once, shared read-only by all requests.
	var provider embed.Provider
	switch cfg.Embedder {
	case "openai":
		client, err := openai.NewClient(openai.Config{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.OpenAITimeout,
		})
		if err != nil {
			log.Error("embeddings client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		provider = client
	default:
		provider = tfidf.Provider{}
	}

	fetcher := fetch.NewClient(cfg.FetchTimeout, cfg.MaxDocumentBytes)

	p := pipeline.New(provider, answer.DefaultTable(), pipeline.Options{
		TopK:           cfg.TopK,
		ScoreThreshold: cfg.ScoreThreshold,
		Answer: answer.Options{
			SentenceFallbackThreshold: cfg.SentenceFallbackThreshold,
			MinAnswerWords:            cfg.MinAnswerWords,
			MinSummaryWords:           cfg.MinSummaryWords,
		},
	}, log)

	srv := api.NewServer(p, fetcher, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		fetcher.Close()
	}()

	log.Info("starting policyqa", "port", cfg.Port, "embedder", provider.Name())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
