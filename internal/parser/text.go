package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/policyqa/internal/document"
)

// TextParser handles plain text files. The whole file becomes one page,
// split into blocks at blank lines.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var blocks []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				blocks = append(blocks, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		blocks = append(blocks, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &document.Document{
		Title: strings.TrimSuffix(filename, ".txt"),
	}
	if len(blocks) > 0 {
		doc.Pages = []document.Page{{Number: 1, Blocks: blocks}}
	}
	return doc, nil
}
