package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/nao1215/pagegrid/options"
)

// Content is a document leaf wrapping one user-supplied value.
//
// Implementations are immutable once constructed except for explicitly
// exposed setters, and rendering is deterministic: the same content
// with the same options always produces identical HTML.
type Content interface {
	// HTML renders the content to an embeddable HTML fragment.
	HTML(opts *options.Options) (string, error)

	// Dependencies returns the logical identifiers of external
	// resources this content requires, resolvable via the deps package.
	Dependencies() []string

	// Equal reports whether other renders equivalently to this
	// content. Equality ignores object identity.
	Equal(other Content) bool

	// String returns a short display name for tree summaries.
	String() string
}

// converter is the shared markdown renderer. GFM enables tables and
// strikethrough; Typographer converts straight quotes and dashes;
// WithUnsafe passes embedded raw HTML through, matching the trust model
// of a library whose input is the author's own document.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// markdownToHTML converts markdown source to HTML.
func markdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
