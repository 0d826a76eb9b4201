package content

import (
	"fmt"
	"os"

	"github.com/nao1215/pagegrid/options"
)

// Markdown is markdown text content.
type Markdown struct {
	text string
}

// NewMarkdown wraps markdown text.
func NewMarkdown(text string) *Markdown {
	return &Markdown{text: text}
}

// NewMarkdownFromFile loads a markdown or plain text file and wraps its
// contents. A missing or unreadable file fails here, at wrap time, not
// at render time.
func NewMarkdownFromFile(path string) (*Markdown, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Author-provided document path is intentional
	if err != nil {
		return nil, fmt.Errorf("read markdown file: %w", err)
	}
	return &Markdown{text: string(data)}, nil
}

// Text returns the wrapped markdown source.
func (m *Markdown) Text() string { return m.text }

// HTML converts the markdown to an HTML fragment.
func (m *Markdown) HTML(_ *options.Options) (string, error) {
	body, err := markdownToHTML(m.text)
	if err != nil {
		return "", err
	}
	return "<div class='pg-markdown'>\n" + body + "</div>", nil
}

// Dependencies returns the base stylesheet dependency.
func (m *Markdown) Dependencies() []string { return []string{"bootstrap"} }

// Equal reports whether other is a Markdown with identical source.
func (m *Markdown) Equal(other Content) bool {
	o, ok := other.(*Markdown)
	return ok && m.text == o.text
}

// String returns the display name used in tree summaries.
func (m *Markdown) String() string { return "Markdown" }
