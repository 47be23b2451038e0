// Package embed defines the embedding contract used for semantic ranking.
package embed

import "context"

// Embedder maps text to a fixed-length dense vector. Implementations may
// require a preparation phase over the request's clause corpus; after Prepare
// returns, Embed and EmbedBatch must be safe for concurrent read-only use.
type Embedder interface {
	Name() string
	Prepare(ctx context.Context, corpus []string) error
	Dimension() int
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Provider creates request-scoped embedders. Process-wide model state (for
// remote backends: the HTTP client and model identity) lives in the provider,
// which is constructed once at startup and shared across requests.
type Provider interface {
	Name() string
	New() Embedder
}
