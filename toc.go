package pagegrid

import (
	"fmt"
	"strings"

	"github.com/nao1215/pagegrid/content"
)

// tocItem is one titled node discovered while walking the tree for the
// table of contents.
type tocItem struct {
	title string
	level int
	id    string
}

// TableOfContents builds a numbered markdown listing of every titled
// node down to maxDepth levels, each entry linking to the node's title
// heading. The receiver itself is level zero and is not listed.
func (n *Node) TableOfContents(maxDepth int) *content.Markdown {
	return tocMarkdown(n.children, n.identifiers(), maxDepth)
}

// tocMarkdown builds the listing for a child sequence using ids for the
// anchor targets, so entries stay in sync with whichever identifier
// assignment the surrounding render pass used.
func tocMarkdown(children []Child, ids map[*Node]string, maxDepth int) *content.Markdown {
	if maxDepth <= 0 {
		maxDepth = AllDepths
	}

	var items []tocItem
	var walk func(node *Node, level int)
	walk = func(node *Node, level int) {
		if node.title != "" {
			items = append(items, tocItem{
				title: node.title,
				level: level,
				id:    ids[node] + "-title",
			})
			level++
		}
		for _, child := range node.children {
			if c, ok := child.(*Node); ok {
				walk(c, level)
			}
		}
	}
	for _, child := range children {
		if c, ok := child.(*Node); ok {
			walk(c, 1)
		}
	}

	var lines []string
	for _, item := range items {
		if item.level > maxDepth {
			continue
		}
		indent := strings.Repeat("\t", item.level-1)
		lines = append(lines, fmt.Sprintf("%s 1. [%s](#%s)", indent, item.title, item.id))
	}
	return content.NewMarkdown(strings.Join(lines, "\n"))
}
