package rank

import (
	"math"
	"testing"

	"github.com/dgallion1/policyqa/internal/document"
)

func clauseSet(texts ...string) []document.Clause {
	clauses := make([]document.Clause, len(texts))
	for i, t := range texts {
		clauses[i] = document.Clause{Page: i + 1, Text: t}
	}
	return clauses
}

func TestTopK_OrdersByDescendingSimilarity(t *testing.T) {
	clauses := clauseSet("far", "near", "middle")
	vectors := [][]float64{
		{0, 1},     // orthogonal to query
		{1, 0},     // identical direction
		{0.5, 0.5}, // in between
	}

	hits := TopK([]float64{1, 0}, clauses, vectors, 3)
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
	want := []string{"near", "middle", "far"}
	for i, w := range want {
		if hits[i].Clause.Text != w {
			t.Errorf("hit[%d]: expected %q, got %q (score %v)", i, w, hits[i].Clause.Text, hits[i].Score)
		}
	}
	if hits[0].Score < hits[1].Score || hits[1].Score < hits[2].Score {
		t.Errorf("scores not descending: %v %v %v", hits[0].Score, hits[1].Score, hits[2].Score)
	}
}

func TestTopK_TiesKeepClauseOrder(t *testing.T) {
	clauses := clauseSet("first", "second", "third")
	same := []float64{1, 0}
	vectors := [][]float64{same, same, same}

	hits := TopK([]float64{1, 0}, clauses, vectors, 3)
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if hits[i].Clause.Text != w {
			t.Errorf("hit[%d]: expected %q, got %q", i, w, hits[i].Clause.Text)
		}
	}
}

func TestTopK_BoundsResults(t *testing.T) {
	clauses := clauseSet("a", "b")
	vectors := [][]float64{{1, 0}, {0, 1}}

	if hits := TopK([]float64{1, 0}, clauses, vectors, 1); len(hits) != 1 {
		t.Errorf("expected 1 hit with k=1, got %d", len(hits))
	}
	if hits := TopK([]float64{1, 0}, clauses, vectors, 10); len(hits) != 2 {
		t.Errorf("expected 2 hits with k>N, got %d", len(hits))
	}
	if hits := TopK([]float64{1, 0}, nil, nil, 3); len(hits) != 0 {
		t.Errorf("expected 0 hits for empty input, got %d", len(hits))
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
	}
	for _, tt := range tests {
		if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
