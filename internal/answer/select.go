// Package answer selects and polishes the final answer text for a question:
// a deterministic override table, keyword-based sentence extraction from the
// top-ranked clause, and a refinement pass.
package answer

import "strings"

// Fallback is the literal answer returned when no sufficiently confident
// match exists.
const Fallback = "Unable to find answer."

// Options tunes sentence selection and refinement.
type Options struct {
	// SentenceFallbackThreshold: below this keyword score the whole clause is
	// returned instead of a single sentence.
	SentenceFallbackThreshold float64
	// MinAnswerWords: refined answers shorter than this get a pointer back to
	// the question appended.
	MinAnswerWords int
	// MinSummaryWords: same rule for the summarization stage.
	MinSummaryWords int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		SentenceFallbackThreshold: 0.15,
		MinAnswerWords:            6,
		MinSummaryWords:           8,
	}
}

// Select extracts the most question-relevant sentence from the top-ranked
// clause text. A sentence that shares almost no question vocabulary is
// unlikely to be the precise answer, so below the threshold the entire clause
// is returned instead. When a sentence is chosen and it is not the clause's
// last sentence, the following sentence is appended to recover answers that
// span a sentence boundary.
func Select(question, clauseText string, opts Options) string {
	sentences := SplitSentences(clauseText)
	if len(sentences) == 0 {
		return strings.TrimSpace(clauseText)
	}

	keywords := questionKeywords(question)
	idx, score := bestSentence(sentences, keywords)
	if score < opts.SentenceFallbackThreshold {
		return strings.TrimSpace(clauseText)
	}

	selected := sentences[idx]
	if idx+1 < len(sentences) {
		selected += " " + sentences[idx+1]
	}
	return strings.TrimSpace(selected)
}
