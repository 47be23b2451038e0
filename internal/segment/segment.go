// Package segment turns parsed documents into ordered candidate answer
// clauses for ranking.
package segment

import (
	"strings"

	"github.com/dgallion1/policyqa/internal/document"
)

// Config controls segmentation behavior.
type Config struct {
	MaxPages int // Pages beyond this are ignored (bounds work on huge documents).
	MinWords int // Blocks with this many words or fewer are discarded.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxPages: 25,
		MinWords: 8,
	}
}

// Clauses flattens the first MaxPages pages of a document into clauses.
// A block survives iff its token count exceeds MinWords, which drops headers,
// page numbers and stray fragments. Newlines are collapsed to single spaces.
// A document with no usable pages yields an empty (non-nil error free) result;
// callers must handle zero clauses.
func Clauses(doc *document.Document, cfg Config) []document.Clause {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 25
	}
	if cfg.MinWords <= 0 {
		cfg.MinWords = 8
	}

	var clauses []document.Clause
	for i, page := range doc.Pages {
		if i >= cfg.MaxPages {
			break
		}
		for _, block := range page.Blocks {
			text := strings.TrimSpace(block)
			if len(strings.Fields(text)) <= cfg.MinWords {
				continue
			}
			clauses = append(clauses, document.Clause{
				Page: page.Number,
				Text: collapseNewlines(text),
			})
		}
	}
	return clauses
}

func collapseNewlines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " ")
}
