package tfidf

import (
	"context"
	"math"
	"testing"

	"github.com/dgallion1/policyqa/internal/rank"
)

func TestEmbedder_RequiresPrepare(t *testing.T) {
	e := NewEmbedder()
	if _, err := e.Embed(context.Background(), "anything"); err == nil {
		t.Error("expected error before Prepare")
	}
	if err := e.Prepare(context.Background(), nil); err == nil {
		t.Error("expected error for empty corpus")
	}
}

func TestEmbedder_SimilarTextScoresHigher(t *testing.T) {
	ctx := context.Background()
	corpus := []string{
		"claims must be filed within thirty days of the hospitalization incident",
		"premium payment renewal formalities require bank account verification documents",
	}

	e := NewEmbedder()
	if err := e.Prepare(ctx, corpus); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	vectors, err := e.EmbedBatch(ctx, corpus)
	if err != nil {
		t.Fatalf("embed corpus: %v", err)
	}
	query, err := e.Embed(ctx, "when must claims be filed after hospitalization")
	if err != nil {
		t.Fatalf("embed query: %v", err)
	}

	if rank.Cosine(query, vectors[0]) <= rank.Cosine(query, vectors[1]) {
		t.Errorf("expected claims clause to outscore premium clause: %v vs %v",
			rank.Cosine(query, vectors[0]), rank.Cosine(query, vectors[1]))
	}
}

func TestEmbedder_VectorsAreNormalized(t *testing.T) {
	ctx := context.Background()
	e := NewEmbedder()
	if err := e.Prepare(ctx, []string{"alpha beta gamma delta", "beta gamma epsilon zeta"}); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	vec, err := e.Embed(ctx, "alpha beta gamma")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
		t.Errorf("expected unit norm, got %v", math.Sqrt(norm))
	}
	if len(vec) != e.Dimension() {
		t.Errorf("vector length %d != dimension %d", len(vec), e.Dimension())
	}
}

func TestEmbedder_OutOfVocabularyIsZero(t *testing.T) {
	ctx := context.Background()
	e := NewEmbedder()
	if err := e.Prepare(ctx, []string{"alpha beta gamma delta"}); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	vec, err := e.Embed(ctx, "completely unknown vocabulary here")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("expected zero vector for OOV text, got %v at %d", v, i)
		}
	}
}

func TestEmbedder_Deterministic(t *testing.T) {
	ctx := context.Background()
	corpus := []string{"claims settlement within fifteen business days", "room rent capped at one percent"}

	embedTwice := func() []float64 {
		e := NewEmbedder()
		if err := e.Prepare(ctx, corpus); err != nil {
			t.Fatalf("prepare: %v", err)
		}
		vec, err := e.Embed(ctx, "claims settlement days")
		if err != nil {
			t.Fatalf("embed: %v", err)
		}
		return vec
	}

	a, b := embedTwice(), embedTwice()
	if len(a) != len(b) {
		t.Fatalf("dimension mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
