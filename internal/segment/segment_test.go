package segment

import (
	"strings"
	"testing"

	"github.com/dgallion1/policyqa/internal/document"
)

func TestClauses_DiscardsShortBlocks(t *testing.T) {
	doc := &document.Document{
		Pages: []document.Page{
			{
				Number: 1,
				Blocks: []string{
					"Page 3",
					"one two three four five six seven eight", // exactly 8 words: dropped
					"one two three four five six seven eight nine",
				},
			},
		},
	}

	clauses := Clauses(doc, Config{MaxPages: 25, MinWords: 8})
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if clauses[0].Text != "one two three four five six seven eight nine" {
		t.Errorf("unexpected clause text: %q", clauses[0].Text)
	}
	if clauses[0].Page != 1 {
		t.Errorf("expected page 1, got %d", clauses[0].Page)
	}
}

func TestClauses_CollapsesNewlines(t *testing.T) {
	doc := &document.Document{
		Pages: []document.Page{
			{
				Number: 2,
				Blocks: []string{"the policy covers inpatient\nhospitalization expenses for the insured\nperson and dependents"},
			},
		},
	}

	clauses := Clauses(doc, DefaultConfig())
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(clauses))
	}
	if strings.Contains(clauses[0].Text, "\n") {
		t.Errorf("clause text still contains newline: %q", clauses[0].Text)
	}
	if strings.Contains(clauses[0].Text, "  ") {
		t.Errorf("clause text contains double space: %q", clauses[0].Text)
	}
	if clauses[0].Page != 2 {
		t.Errorf("expected page 2, got %d", clauses[0].Page)
	}
}

func TestClauses_PageCap(t *testing.T) {
	long := strings.Repeat("word ", 20)
	doc := &document.Document{
		Pages: []document.Page{
			{Number: 1, Blocks: []string{long}},
			{Number: 2, Blocks: []string{long}},
			{Number: 3, Blocks: []string{long}},
		},
	}

	clauses := Clauses(doc, Config{MaxPages: 2, MinWords: 8})
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses (page cap), got %d", len(clauses))
	}
	if clauses[1].Page != 2 {
		t.Errorf("expected last clause from page 2, got %d", clauses[1].Page)
	}
}

func TestClauses_EmptyDocument(t *testing.T) {
	clauses := Clauses(&document.Document{}, DefaultConfig())
	if len(clauses) != 0 {
		t.Errorf("expected 0 clauses for empty document, got %d", len(clauses))
	}
}

func TestClauses_PreservesReadingOrder(t *testing.T) {
	doc := &document.Document{
		Pages: []document.Page{
			{Number: 1, Blocks: []string{
				"alpha alpha alpha alpha alpha alpha alpha alpha alpha",
				"beta beta beta beta beta beta beta beta beta",
			}},
			{Number: 2, Blocks: []string{
				"gamma gamma gamma gamma gamma gamma gamma gamma gamma",
			}},
		},
	}

	clauses := Clauses(doc, DefaultConfig())
	if len(clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %d", len(clauses))
	}
	for i, prefix := range []string{"alpha", "beta", "gamma"} {
		if !strings.HasPrefix(clauses[i].Text, prefix) {
			t.Errorf("clause %d: expected prefix %q, got %q", i, prefix, clauses[i].Text)
		}
	}
}
