package answer

import (
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence. Second one! Third one? Trailing fragment")
	want := []string{"First sentence.", "Second one!", "Third one?", "Trailing fragment"}
	if len(sentences) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %v", len(want), len(sentences), sentences)
	}
	for i, w := range want {
		if sentences[i] != w {
			t.Errorf("sentence[%d]: expected %q, got %q", i, w, sentences[i])
		}
	}
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	sentences := SplitSentences("no terminal punctuation here")
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
}

func TestSplitSentences_DecimalNumbersAreApproximate(t *testing.T) {
	// Terminal-punctuation splitting is a documented heuristic; a period
	// followed by a space always ends a sentence, even after "Dr."
	sentences := SplitSentences("Dr. Smith signed the form. The claim was approved.")
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences under the heuristic, got %d: %v", len(sentences), sentences)
	}
}

func TestSelect_ClaimProcessingScenario(t *testing.T) {
	clause := "Claims must be filed within 30 days of the incident. The insurer will process valid claims within 15 business days."
	got := Select("How long to process a claim?", clause, DefaultOptions())
	want := "The insurer will process valid claims within 15 business days."
	if got != want {
		t.Errorf("expected second sentence, got %q", got)
	}
}

func TestSelect_LowOverlapFallsBackToClause(t *testing.T) {
	clause := "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs."
	got := Select("Explain quantum entanglement thoroughly please?", clause, DefaultOptions())
	if got != clause {
		t.Errorf("expected whole clause on low keyword overlap, got %q", got)
	}
}

func TestSelect_StitchesFollowingSentence(t *testing.T) {
	clause := "The policy covers dental treatment after accidents. Coverage is limited to emergency procedures. Premiums are payable annually in advance."
	got := Select("Does the policy cover dental treatment?", clause, DefaultOptions())
	if !strings.HasPrefix(got, "The policy covers dental treatment after accidents.") {
		t.Fatalf("expected first sentence selected, got %q", got)
	}
	if !strings.Contains(got, "Coverage is limited to emergency procedures.") {
		t.Errorf("expected following sentence stitched on, got %q", got)
	}
	if strings.Contains(got, "Premiums") {
		t.Errorf("stitch should only append the immediate successor, got %q", got)
	}
}

func TestSelect_EmptyClause(t *testing.T) {
	if got := Select("Any question?", "   ", DefaultOptions()); got != "" {
		t.Errorf("expected empty result for blank clause, got %q", got)
	}
}

func TestKeywordScore_PenalizesLongSentences(t *testing.T) {
	keywords := questionKeywords("What is the claim deadline?")
	short := keywordScore("The claim deadline is strict.", keywords)
	long := keywordScore("The claim deadline is strict and also many other words appear here diluting relevance considerably overall.", keywords)
	if short <= long {
		t.Errorf("expected shorter sentence to score higher: short=%v long=%v", short, long)
	}
}
