package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// RelocateScripts moves every <script> element inside <body> to the end
// of the body, preserving their relative order. Scripts emitted inline
// by content fragments would otherwise run before the elements they
// target exist.
//
// The document is re-serialized from the parsed tree, so the result is
// well formed regardless of the input's quirks.
func RelocateScripts(doc string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", err
	}

	body := findFirst(root, "body")
	if body != nil {
		scripts := FindAll(body, "script")
		for _, s := range scripts {
			s.Parent.RemoveChild(s)
		}
		for _, s := range scripts {
			body.AppendChild(s)
		}
	}

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FindAll returns all elements with the given tag name in the subtree
// rooted at n, in document order.
func FindAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Attr returns the value of the named attribute on n, or empty string.
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Text returns the concatenated text content of the subtree at n.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// findFirst returns the first element with the given tag, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
