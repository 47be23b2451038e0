package answer

import "strings"

// SplitSentences does terminal-punctuation sentence splitting: a sentence
// ends at '.', '!' or '?' followed by a space. Abbreviations like "Dr." or
// "U.S.A." are a known approximation; this is a heuristic boundary, not a
// guaranteed one.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// questionKeywords builds the normalized token set of a question.
func questionKeywords(question string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, w := range strings.Fields(question) {
		if t := normalizeToken(w); t != "" {
			keywords[t] = struct{}{}
		}
	}
	return keywords
}

// keywordScore rates a sentence by the fraction of question keywords it
// contains, normalized by sentence length so long sentences that incidentally
// contain many words are penalized.
func keywordScore(sentence string, keywords map[string]struct{}) float64 {
	seen := make(map[string]struct{})
	overlap := 0
	for _, w := range strings.Fields(sentence) {
		t := normalizeToken(w)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := keywords[t]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(seen)+1)
}

// normalizeToken lowercases, strips surrounding punctuation and folds a
// trailing plural 's' so "claim" and "claims." count as the same keyword.
func normalizeToken(w string) string {
	t := strings.ToLower(strings.Trim(w, ".,;:!?()\"'"))
	if len(t) > 3 && strings.HasSuffix(t, "s") && !strings.HasSuffix(t, "ss") {
		t = t[:len(t)-1]
	}
	return t
}

// bestSentence returns the index of the highest keyword-scoring sentence and
// its score. Ties keep the earliest sentence.
func bestSentence(sentences []string, keywords map[string]struct{}) (int, float64) {
	bestIdx, bestScore := 0, -1.0
	for i, s := range sentences {
		if score := keywordScore(s, keywords); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore
}
