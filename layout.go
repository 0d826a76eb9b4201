package pagegrid

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/nao1215/pagegrid/options"
)

// Child is anything a node can hold: another *Node or a content leaf.
// The content package's Content interface satisfies it structurally, so
// the tree never imports a concrete content type.
type Child interface {
	// HTML renders the child to an embeddable fragment.
	HTML(opts *options.Options) (string, error)

	// Dependencies returns the logical identifiers of external
	// resources the child requires.
	Dependencies() []string
}

// Node is one structural element of the layout tree. The zero value is
// not usable; construct nodes with NewPage, NewSection, NewRow, and
// friends, or implicitly through assignment.
type Node struct {
	kind     Kind
	title    string
	children []Child

	// colWidth fixes a Column's grid width in twelfths. Zero means
	// equal share of the row.
	colWidth int

	// Page-only presentation state.
	navBrand string
	maxWidth int
	tocDepth int
	opts     *options.Options
}

// PageOption configures a Page at construction time.
type PageOption func(*Node)

// WithNavBrand sets the brand name shown in the page's navigation bar.
func WithNavBrand(brand string) PageOption {
	return func(n *Node) { n.navBrand = brand }
}

// WithMaxWidth caps the rendered page body width in pixels, overriding
// the configured default.
func WithMaxWidth(px int) PageOption {
	return func(n *Node) { n.maxWidth = px }
}

// WithTableOfContents prepends a generated table of contents covering
// titled nodes down to maxDepth levels. Use AllDepths for no limit.
func WithTableOfContents(maxDepth int) PageOption {
	return func(n *Node) { n.tocDepth = maxDepth }
}

// AllDepths is a table of contents depth that includes every titled
// level of the tree.
const AllDepths = 99

// WithOptions attaches per-page rendering options, overriding the
// options passed at render time.
func WithOptions(opts *options.Options) PageOption {
	return func(n *Node) { n.opts = opts }
}

// NewPage returns the root node of a document.
func NewPage(title string, pageOpts ...PageOption) *Node {
	n := &Node{kind: KindPage, title: title}
	for _, opt := range pageOpts {
		opt(n)
	}
	return n
}

// NewSection returns a Section, a thematically distinct block of rows.
func NewSection(title string) *Node {
	return &Node{kind: KindSection, title: title}
}

// NewCardSection returns a Section variant whose assignment creates
// card rows, so bare values become equal-height cards.
func NewCardSection(title string) *Node {
	return &Node{kind: KindCardSection, title: title}
}

// NewRow returns a Row, a horizontal container of columns.
func NewRow(title string) *Node {
	return &Node{kind: KindRow, title: title}
}

// NewCardRow returns a Row variant holding cards instead of columns.
func NewCardRow(title string) *Node {
	return &Node{kind: KindCardRow, title: title}
}

// NewColumn returns a Column, a proportionally sized content holder.
// width, if positive, fixes the column at width twelfths of the row;
// zero shares space equally with siblings.
func NewColumn(title string, width int) *Node {
	return &Node{kind: KindColumn, title: title, colWidth: width}
}

// NewCard returns a Column variant with card styling for grouping
// related items.
func NewCard(title string) *Node {
	return &Node{kind: KindCard, title: title}
}

// NewSpacer returns an empty Column. It reserves a cell in its row but
// renders no content.
func NewSpacer() *Node {
	return &Node{kind: KindSpacer}
}

// NewPageBreak returns a render-only marker that forces a page break
// when the document is printed or converted to PDF.
func NewPageBreak() *Node {
	return &Node{kind: KindPageBreak}
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// Title returns the node's title, empty if untitled.
func (n *Node) Title() string { return n.title }

// SetTitle replaces the node's title. Titled children are addressable
// by title through Get, Lookup, and Delete.
func (n *Node) SetTitle(title string) { n.title = title }

// NavBrand returns the brand name for the page's navigation bar.
func (n *Node) NavBrand() string { return n.navBrand }

// MaxWidth returns the page's body width cap in pixels, 0 if unset.
func (n *Node) MaxWidth() int { return n.maxWidth }

// Options returns the per-page rendering options, nil if unset.
func (n *Node) Options() *options.Options { return n.opts }

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Children returns a copy of the child sequence. Mutating the returned
// slice does not affect the tree.
func (n *Node) Children() []Child {
	out := make([]Child, len(n.children))
	copy(out, n.children)
	return out
}

// identifier returns the node's HTML element id: the normalized title,
// or a kind-derived default for untitled nodes.
func (n *Node) identifier() string {
	if id := normalizeTitle(n.title); id != "" {
		return id
	}
	return "pg-" + strings.ToLower(n.kind.String())
}

// identifiers assigns a unique element id to every node in the subtree.
// The first node whose identifier produces a given base keeps it; later
// nodes with the same base get an ordinal suffix, so titles that
// normalize identically in different subtrees never collide.
func (n *Node) identifiers() map[*Node]string {
	ids := make(map[*Node]string)
	seen := make(map[string]int)

	var walk func(node *Node)
	walk = func(node *Node) {
		base := node.identifier()
		seen[base]++
		if count := seen[base]; count > 1 {
			ids[node] = fmt.Sprintf("%s-%d", base, count)
		} else {
			ids[node] = base
		}
		for _, child := range node.children {
			if sub, ok := child.(*Node); ok {
				walk(sub)
			}
		}
	}
	walk(n)
	return ids
}

// foldCaser performs Unicode case folding for title comparison.
//
// Design decision: titles are matched after case folding plus
// identifier normalization, so Lookup("My Section") and
// Lookup("my_section") find the same child. cases.Fold handles
// non-ASCII titles correctly where strings.ToLower would not.
var foldCaser = cases.Fold()

// normalizeTitle converts a title to its identifier form: case folded,
// with every run of non-alphanumeric characters collapsed to a single
// underscore and outer underscores trimmed.
func normalizeTitle(title string) string {
	folded := foldCaser.String(title)

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// Tree returns an indented summary of the subtree, one line per node
// with content leaves shown by their display name.
func (n *Node) Tree() string {
	var b strings.Builder
	n.writeTree(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (n *Node) writeTree(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.title != "" {
		fmt.Fprintf(b, "%s%s: %s\n", indent, n.kind, n.title)
	} else {
		fmt.Fprintf(b, "%s%s\n", indent, n.kind)
	}
	for _, child := range n.children {
		switch c := child.(type) {
		case *Node:
			c.writeTree(b, depth+1)
		case fmt.Stringer:
			fmt.Fprintf(b, "%s  %s\n", indent, c.String())
		default:
			fmt.Fprintf(b, "%s  %T\n", indent, child)
		}
	}
}

// RequiredDependencies walks the subtree and returns the distinct
// logical dependency identifiers required by the content present, in
// first-encountered order. Every node requires the base stylesheet.
func (n *Node) RequiredDependencies() []string {
	seen := make(map[string]bool)
	var out []string

	add := func(names []string) {
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}

	add(n.Dependencies())
	var walk func(node *Node)
	walk = func(node *Node) {
		for _, child := range node.children {
			add(child.Dependencies())
			if c, ok := child.(*Node); ok {
				walk(c)
			}
		}
	}
	walk(n)
	return out
}

// Dependencies returns the node's own dependency identifiers,
// excluding children. It exists so *Node satisfies Child.
func (n *Node) Dependencies() []string { return []string{"bootstrap"} }
