package content

import "github.com/nao1215/pagegrid/options"

// RawHTML is markup passed through to the document verbatim.
// No escaping or validation is applied; the author owns the fragment.
type RawHTML struct {
	html string
}

// NewRawHTML wraps an HTML fragment.
func NewRawHTML(html string) *RawHTML {
	return &RawHTML{html: html}
}

// HTML returns the wrapped fragment unchanged.
func (r *RawHTML) HTML(_ *options.Options) (string, error) {
	return r.html, nil
}

// Dependencies returns nil: raw markup declares no resources.
func (r *RawHTML) Dependencies() []string { return nil }

// Equal reports whether other is a RawHTML with identical markup.
func (r *RawHTML) Equal(other Content) bool {
	o, ok := other.(*RawHTML)
	return ok && r.html == o.html
}

// String returns the display name used in tree summaries.
func (r *RawHTML) String() string { return "RawHTML" }
