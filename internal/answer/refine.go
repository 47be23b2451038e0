package answer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Refine normalizes a selected answer: whitespace runs collapse to single
// spaces, the first letter is capitalized, terminal punctuation is ensured,
// and answers below MinAnswerWords get a pointer back to the question so
// short answers still give the caller a breadcrumb.
func Refine(question, answer string, opts Options) string {
	answer = strings.Join(strings.Fields(answer), " ")
	if answer == "" {
		return answer
	}

	first, size := utf8.DecodeRuneInString(answer)
	if unicode.IsLetter(first) && unicode.IsLower(first) {
		answer = string(unicode.ToUpper(first)) + answer[size:]
	}

	answer = ensureTerminated(answer)

	if len(strings.Fields(answer)) < opts.MinAnswerWords {
		answer = fmt.Sprintf("%s (See policy for more details on: %s)", answer, question)
		answer = ensureTerminated(answer)
	}
	return answer
}

func ensureTerminated(s string) string {
	if s == "" || strings.ContainsRune(".!?", rune(s[len(s)-1])) {
		return s
	}
	return s + "."
}

// Summarize is the secondary stage: the override table is consulted again
// (same table as the selector, so the two stay in sync), and a long generic
// answer is reduced to its most keyword-relevant sentence plus its successor.
func Summarize(question, answer string, table Table, opts Options) string {
	if canned, ok := table.Match(question); ok {
		return canned
	}

	summary := answer
	sentences := SplitSentences(answer)
	if len(sentences) > 1 && len(strings.Fields(answer)) > 30 {
		keywords := questionKeywords(question)
		idx, _ := bestSentence(sentences, keywords)
		summary = sentences[idx]
		if idx+1 < len(sentences) {
			summary += " " + sentences[idx+1]
		}
		summary = strings.TrimSpace(summary)
	}

	if len(strings.Fields(summary)) < opts.MinSummaryWords {
		summary = fmt.Sprintf("%s (See policy for more details on: %s)", summary, question)
	}
	return summary
}
