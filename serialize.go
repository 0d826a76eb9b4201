package pagegrid

import (
	"fmt"
	"html"
	"strings"

	"github.com/nao1215/pagegrid/options"
)

// ToHTML renders the subtree as a nested HTML fragment following the
// grid contract: sections are titled blocks, rows are horizontal flex
// containers, columns are proportionally sized cells, and content
// leaves render through their own HTML method. Serialization is
// deterministic; an unmodified tree always renders byte-identically.
//
// A nil opts falls back to the page's attached options, then to the
// package defaults.
func (n *Node) ToHTML(opts *options.Options) (string, error) {
	opts = n.resolveOptions(opts)

	if n.kind == KindPage && n.tocDepth > 0 {
		return n.renderWithContents(opts)
	}
	return n.renderHTML(opts, n.identifiers())
}

// HTML renders the subtree. It satisfies Child, so nodes and content
// leaves are interchangeable inside a parent's child sequence.
func (n *Node) HTML(opts *options.Options) (string, error) {
	return n.ToHTML(opts)
}

var _ Child = (*Node)(nil)

// resolveOptions picks the effective options for a render call.
func (n *Node) resolveOptions(opts *options.Options) *options.Options {
	if opts != nil {
		return opts
	}
	if n.opts != nil {
		return n.opts
	}
	return options.Default()
}

// renderWithContents renders the page with a synthetic leading section
// holding the table of contents. The page itself is never mutated, so
// the listing always reflects the current children and is not rendered
// into itself on repeated calls. Identifiers are assigned with the
// synthetic section in place, so the listing's anchors match the
// rendered ids exactly.
func (n *Node) renderWithContents(opts *options.Options) (string, error) {
	contents := &Node{kind: n.kind.spec().child, title: "Contents"}
	view := *n
	view.children = append([]Child{contents}, n.children...)

	// Anchor ids are assigned before the listing is wrapped into the
	// synthetic section. Wrapping only adds untitled nodes, whose
	// kind-derived ids never collide with title-derived anchors, so the
	// assignment after wrapping agrees on every titled node.
	toc := tocMarkdown(n.children, view.identifiers(), n.tocDepth)
	wrapped, err := smartWrap(contents, []any{toc})
	if err != nil {
		return "", err
	}
	contents.children = wrapped

	return view.renderHTML(opts, view.identifiers())
}

func (n *Node) renderHTML(opts *options.Options, ids map[*Node]string) (string, error) {
	spec := n.kind.spec()

	var body strings.Builder
	if n.title != "" && spec.titleTag != "" {
		fmt.Fprintf(&body, "<%s id='%s-title' class='%s'>%s</%s>\n",
			spec.titleTag, ids[n], spec.titleClass,
			html.EscapeString(n.title), spec.titleTag)
	}
	for _, child := range n.children {
		var fragment string
		var err error
		if node, ok := child.(*Node); ok {
			fragment, err = node.renderHTML(opts, ids)
		} else {
			fragment, err = child.HTML(opts)
		}
		if err != nil {
			return "", err
		}
		body.WriteString(fragment)
		body.WriteString("\n")
	}

	var open strings.Builder
	fmt.Fprintf(&open, "<%s id='%s'", spec.bodyTag, ids[n])
	if class := n.bodyClass(); class != "" {
		fmt.Fprintf(&open, " class='%s'", class)
	}
	if style := n.bodyStyle(opts); style != "" {
		fmt.Fprintf(&open, " style='%s'", style)
	}
	open.WriteString(">")

	return fmt.Sprintf("%s\n%s</%s>", open.String(), body.String(), spec.bodyTag), nil
}

// bodyClass returns the element classes, swapping the flexible column
// class for a fixed-width one when a width is set.
func (n *Node) bodyClass() string {
	class := n.kind.spec().bodyClass
	if n.colWidth > 0 {
		class = strings.Replace(class, "col-lg", fmt.Sprintf("col-lg-%d", n.colWidth), 1)
	}
	return class
}

// bodyStyle returns the element's inline style. Pages append their
// effective width cap so the grid never exceeds it.
func (n *Node) bodyStyle(opts *options.Options) string {
	style := n.kind.spec().bodyStyle
	if n.kind == KindPage {
		width := n.maxWidth
		if width <= 0 {
			width = opts.MaxWidth
		}
		if width > 0 {
			style += fmt.Sprintf(" max-width: %dpx;", width)
			style = strings.TrimSpace(style)
		}
	}
	return style
}
