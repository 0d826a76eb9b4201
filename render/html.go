package render

import (
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"github.com/nao1215/pagegrid"
	"github.com/nao1215/pagegrid/deps"
	"github.com/nao1215/pagegrid/internal/assets"
	"github.com/nao1215/pagegrid/internal/htmlutil"
	internallog "github.com/nao1215/pagegrid/internal/log"
	"github.com/nao1215/pagegrid/options"
)

// renderer holds per-call rendering state assembled from Options.
type renderer struct {
	source    deps.Source
	converter Converter
	logger    *slog.Logger
}

// Option configures a single render call.
type Option func(*renderer)

// WithSource overrides the dependency provisioning mode for this call.
func WithSource(source deps.Source) Option {
	return func(r *renderer) { r.source = source }
}

// WithConverter sets the PDF converter used by SavePDF. The default
// shells out to weasyprint.
func WithConverter(c Converter) Option {
	return func(r *renderer) { r.converter = c }
}

// WithLogger sets the logger for render diagnostics. The default
// logger stays silent below warning level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *renderer) { r.logger = logger }
}

func newRenderer(opts []Option) *renderer {
	r := &renderer{
		logger: internallog.NewLogger(io.Discard, false),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// pageTemplate is the document skeleton parsed once at startup. It is
// a text template on purpose: every inserted value is either rendered
// HTML or escaped by us before execution.
var pageTemplate = template.Must(template.New("page").Parse(assets.PageTemplate()))

// pageData feeds pageTemplate.
type pageData struct {
	DocTitle string
	NavBrand string
	CSS      string
	JS       string
	Content  string
	HeadDeps []string
	TailDeps []string
}

// HTML renders page as a complete standalone document: resolved head
// dependencies, embedded stylesheet, rendered body, and scripts moved
// to the end of the body. Output is deterministic and parses as
// well-formed markup.
func HTML(page *pagegrid.Node, opts ...Option) (string, error) {
	return htmlDocument(page, newRenderer(opts))
}

func htmlDocument(page *pagegrid.Node, r *renderer) (string, error) {
	if page == nil || page.Kind() != pagegrid.KindPage {
		return "", fmt.Errorf("%w: got %v", ErrNotPage, kindOf(page))
	}

	o := page.Options()
	if o == nil {
		o = options.Default()
	}
	source := r.source
	if source == "" {
		source = deps.Source(o.DependencySource)
	}

	body, err := page.ToHTML(o)
	if err != nil {
		return "", fmt.Errorf("render page body: %w", err)
	}

	names := page.RequiredDependencies()
	resolved, err := deps.NewRegistry(o).Resolve(names, source)
	if err != nil {
		return "", err
	}
	r.logger.Debug("rendered page body",
		"page", page.Title(), "bytes", len(body), "deps", names, "source", string(source))

	var sb strings.Builder
	err = pageTemplate.Execute(&sb, pageData{
		DocTitle: html.EscapeString(page.Title()),
		NavBrand: html.EscapeString(page.NavBrand()),
		CSS:      assets.PagegridCSS(),
		JS:       assets.PagegridJS(),
		Content:  body,
		HeadDeps: resolved.Head,
		TailDeps: resolved.Tail,
	})
	if err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}

	doc, err := htmlutil.RelocateScripts(sb.String())
	if err != nil {
		return "", fmt.Errorf("relocate scripts: %w", err)
	}
	return doc, nil
}

// Fragment renders a single node or content leaf as a self-contained
// fragment with its dependencies and the document stylesheet attached,
// suitable for notebook-style rich display. The markup of the item
// itself is identical to what file output would contain.
func Fragment(item pagegrid.Child, opts ...Option) (string, error) {
	r := newRenderer(opts)

	o := options.Default()
	if node, ok := item.(*pagegrid.Node); ok && node.Options() != nil {
		o = node.Options()
	}
	source := r.source
	if source == "" {
		source = deps.Source(o.DependencySource)
	}

	var body string
	var names []string
	var err error
	if node, ok := item.(*pagegrid.Node); ok {
		body, err = node.ToHTML(o)
		names = node.RequiredDependencies()
	} else {
		body, err = item.HTML(o)
		names = item.Dependencies()
	}
	if err != nil {
		return "", err
	}

	resolved, err := deps.NewRegistry(o).Resolve(names, source)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, dep := range resolved.Head {
		sb.WriteString(dep)
		sb.WriteString("\n")
	}
	sb.WriteString("<style>\n")
	sb.WriteString(assets.PagegridCSS())
	sb.WriteString("\n</style>\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	for _, dep := range resolved.Tail {
		sb.WriteString(dep)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// kindOf describes a possibly nil node for error messages.
func kindOf(n *pagegrid.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}
