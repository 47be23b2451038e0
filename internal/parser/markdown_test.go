package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_SectionsBecomePages(t *testing.T) {
	input := "Intro text before any heading.\n\n# Coverage\n\nThe policy covers hospitalization.\n\n# Exclusions\n\nCosmetic surgery is excluded.\n"
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "policy.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "policy" {
		t.Errorf("expected title %q, got %q", "policy", doc.Title)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages (intro + 2 sections), got %d", len(doc.Pages))
	}
	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Errorf("page %d: expected number %d, got %d", i, i+1, page.Number)
		}
	}
	if doc.Pages[1].Blocks[0] != "Coverage" {
		t.Errorf("expected heading block %q, got %q", "Coverage", doc.Pages[1].Blocks[0])
	}
	if got, want := doc.Pages[1].Blocks[1], "The policy covers hospitalization."; got != want {
		t.Errorf("expected paragraph block %q, got %q", want, got)
	}
	if got, want := doc.Pages[2].Blocks[1], "Cosmetic surgery is excluded."; got != want {
		t.Errorf("expected exclusions block %q, got %q", want, got)
	}
}

func TestMarkdownParser_ParagraphTextNotDuplicated(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader("The policy covers hospitalization expenses.\n"), "p.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 || len(doc.Pages[0].Blocks) != 1 {
		t.Fatalf("expected 1 page with 1 block, got %v", doc.Pages)
	}
	if got, want := doc.Pages[0].Blocks[0], "The policy covers hospitalization expenses."; got != want {
		t.Errorf("expected block %q, got %q", want, got)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader("Just a single paragraph of text."), "flat.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
	if len(doc.Pages[0].Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Pages[0].Blocks))
	}
}

func TestHTMLParser_HeadingsAndParagraphs(t *testing.T) {
	input := "<html><head><title>Policy Wording</title></head><body>" +
		"<h1>Coverage</h1><p>The policy covers hospitalization.</p>" +
		"<h1>Exclusions</h1><p>Cosmetic surgery is excluded.</p>" +
		"</body></html>"
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "policy.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "Policy Wording" {
		t.Errorf("expected title from <title>, got %q", doc.Title)
	}
	if len(doc.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(doc.Pages))
	}
	if doc.Pages[0].Blocks[0] != "Coverage" {
		t.Errorf("expected first block %q, got %q", "Coverage", doc.Pages[0].Blocks[0])
	}
}
