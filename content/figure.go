package content

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/nao1215/pagegrid/options"
)

// DOT is Graphviz DOT source. It is a distinct type so the dispatcher
// can tell a graph description apart from literal markdown text.
type DOT string

// Figure is a graph rendered through Graphviz, as inline SVG markup or
// a base64 PNG depending on the configured figure format.
type Figure struct {
	dot     string
	caption string
	format  string
}

// NewFigure wraps Graphviz DOT source as figure content. The source is
// parsed eagerly so syntax errors surface at wrap time, not at render
// time.
func NewFigure(dot DOT) (*Figure, error) {
	src := strings.TrimSpace(string(dot))
	if src == "" {
		return nil, ErrEmptyFigure
	}

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse DOT source: %w", err)
	}
	defer g.Close() //nolint:errcheck // parse-only graph

	return &Figure{dot: src}, nil
}

// SetCaption sets the caption rendered under the figure.
func (f *Figure) SetCaption(caption string) { f.caption = caption }

// SetFormat overrides the configured output format ("svg" or "png")
// for this figure only.
func (f *Figure) SetFormat(format string) { f.format = format }

// HTML renders the graph.
func (f *Figure) HTML(opts *options.Options) (string, error) {
	format := f.format
	if format == "" && opts != nil {
		format = opts.Figure.Format
	}
	if format == "" {
		format = options.DefaultFigureFormat
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close() //nolint:errcheck // render-only instance

	graph, err := graphviz.ParseBytes([]byte(f.dot))
	if err != nil {
		return "", fmt.Errorf("parse DOT source: %w", err)
	}
	defer graph.Close() //nolint:errcheck // render-only graph

	var inner string
	switch format {
	case "png":
		var buf bytes.Buffer
		if err := gv.Render(ctx, graph, graphviz.PNG, &buf); err != nil {
			return "", fmt.Errorf("render figure: %w", err)
		}
		encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
		inner = fmt.Sprintf(
			"<img class='img-fluid pg-figure-img' alt='Figure' src='data:image/png;base64,%s'>", encoded)
	default:
		var buf bytes.Buffer
		if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
			return "", fmt.Errorf("render figure: %w", err)
		}
		inner = responsiveSVG(buf.String())
	}

	var sb strings.Builder
	sb.WriteString("<div class='pg-figure'>\n")
	sb.WriteString(inner)
	if f.caption != "" {
		fmt.Fprintf(&sb, "\n<figcaption class='figure-caption'>%s</figcaption>", escapeText(f.caption))
	}
	sb.WriteString("\n</div>")
	return sb.String(), nil
}

// Dependencies returns the base stylesheet dependency.
func (f *Figure) Dependencies() []string { return []string{"bootstrap"} }

// Equal reports whether other is a Figure with identical DOT source.
func (f *Figure) Equal(other Content) bool {
	o, ok := other.(*Figure)
	return ok && f.dot == o.dot
}

// String returns the display name used in tree summaries.
func (f *Figure) String() string { return "Figure" }

var (
	svgTagRe   = regexp.MustCompile(`<svg[^>]*>`)
	sizeAttrRe = regexp.MustCompile(`\s(?:width|height)="[^"]*"`)
)

// responsiveSVG strips the fixed pixel size from the root svg element
// so the graph scales with its column. The viewBox is untouched, which
// preserves the aspect ratio.
func responsiveSVG(svg string) string {
	loc := svgTagRe.FindStringIndex(svg)
	if loc == nil {
		return svg
	}
	tag := svg[loc[0]:loc[1]]
	tag = sizeAttrRe.ReplaceAllString(tag, "")
	tag = strings.Replace(tag, "<svg", "<svg preserveAspectRatio='xMinYMin meet'", 1)
	return svg[:loc[0]] + tag + svg[loc[1]:]
}
