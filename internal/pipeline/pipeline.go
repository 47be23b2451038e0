// Package pipeline sequences segmentation output through ranking, answer
// selection and refinement, one question at a time.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/policyqa/internal/answer"
	"github.com/dgallion1/policyqa/internal/document"
	"github.com/dgallion1/policyqa/internal/embed"
	"github.com/dgallion1/policyqa/internal/rank"
)

// Options tunes ranking and selection.
type Options struct {
	TopK           int     // Clauses considered per question (>=1).
	ScoreThreshold float64 // Below this cosine score the fallback answer is returned.
	Answer         answer.Options
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		TopK:           1,
		ScoreThreshold: 0.3,
		Answer:         answer.DefaultOptions(),
	}
}

// Pipeline answers question batches over segmented documents. It holds only
// process-wide read-only state and is safe for concurrent use.
type Pipeline struct {
	provider  embed.Provider
	overrides answer.Table
	opts      Options
	log       *slog.Logger
}

// New creates a pipeline. The provider is the process-wide embedding backend
// injected at startup.
func New(provider embed.Provider, overrides answer.Table, opts Options, log *slog.Logger) *Pipeline {
	if opts.TopK <= 0 {
		opts.TopK = 1
	}
	return &Pipeline{
		provider:  provider,
		overrides: overrides,
		opts:      opts,
		log:       log,
	}
}

// Session holds the request-scoped retrieval state: the clause set and its
// embeddings, computed once and shared read-only by every question in the
// request.
type Session struct {
	p        *Pipeline
	embedder embed.Embedder
	clauses  []document.Clause
	vectors  [][]float64
}

// NewSession prepares an embedder over the clause corpus and embeds all
// clauses. An empty clause set is valid; every question then gets the
// fallback answer.
func (p *Pipeline) NewSession(ctx context.Context, clauses []document.Clause) (*Session, error) {
	s := &Session{p: p, clauses: clauses}
	if len(clauses) == 0 {
		return s, nil
	}

	texts := make([]string, len(clauses))
	for i, c := range clauses {
		texts[i] = c.Text
	}

	s.embedder = p.provider.New()
	if err := s.embedder.Prepare(ctx, texts); err != nil {
		return nil, fmt.Errorf("prepare embedder: %w", err)
	}
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed clauses: %w", err)
	}
	s.vectors = vectors
	return s, nil
}

// Run answers each question in order. The result always has exactly one
// non-empty answer per question; a failure in one question's path degrades to
// the fallback string and never aborts the batch.
func (s *Session) Run(ctx context.Context, questions []string) []string {
	answers := make([]string, len(questions))
	for i, q := range questions {
		answers[i] = s.Answer(ctx, q)
	}
	return answers
}

// Answer produces the answer for a single question.
func (s *Session) Answer(ctx context.Context, question string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			s.p.log.Error("question recovered", "question", question, "panic", r)
			result = answer.Fallback
		}
	}()

	// Overrides are checked before ranking; known categories have more
	// reliable phrasing than similarity search.
	if canned, ok := s.p.overrides.Match(question); ok {
		return canned
	}

	if len(s.clauses) == 0 {
		return answer.Fallback
	}

	queryVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		s.p.log.Warn("embed question failed", "question", question, "error", err)
		return answer.Fallback
	}

	hits := rank.TopK(queryVec, s.clauses, s.vectors, s.p.opts.TopK)
	if len(hits) == 0 || hits[0].Score < s.p.opts.ScoreThreshold {
		return answer.Fallback
	}

	selected := answer.Select(question, hits[0].Clause.Text, s.p.opts.Answer)
	refined := answer.Refine(question, selected, s.p.opts.Answer)
	summary := answer.Summarize(question, refined, s.p.overrides, s.p.opts.Answer)
	if summary == "" {
		return answer.Fallback
	}
	return summary
}
