package document

// Document is the parsed form of a source file: per-page blocks of text.
type Document struct {
	Title string // Document title (from metadata or filename)
	Pages []Page // In reading order
}

// Page holds the block-level text units of one page. For formats without
// physical pages (markdown, html, docx) a page corresponds to one top-level
// section.
type Page struct {
	Number int      // 1-based page number
	Blocks []string // Paragraph-like chunks in reading order
}

// Clause is a candidate answer unit produced by segmentation. Text has
// embedded newlines collapsed to single spaces and is never empty.
type Clause struct {
	Page int
	Text string
}
