// Package rank orders clauses by cosine similarity to a query vector.
package rank

import (
	"math"
	"sort"

	"github.com/dgallion1/policyqa/internal/document"
)

// ScoredClause is a transient ranking result.
type ScoredClause struct {
	Clause document.Clause
	Score  float64
}

// TopK returns up to k clauses ranked by descending cosine similarity to the
// query vector. Ties keep original clause order (stable sort). clauses and
// vectors must be parallel; empty input yields an empty result.
func TopK(query []float64, clauses []document.Clause, vectors [][]float64, k int) []ScoredClause {
	if k <= 0 {
		k = 1
	}
	scored := make([]ScoredClause, 0, len(clauses))
	for i, clause := range clauses {
		if i >= len(vectors) {
			break
		}
		scored = append(scored, ScoredClause{
			Clause: clause,
			Score:  Cosine(query, vectors[i]),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// Cosine computes cosine similarity between two vectors. A zero-norm vector
// scores 0 against anything.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
