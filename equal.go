package pagegrid

import "github.com/nao1215/pagegrid/content"

// Equal reports structural equality: same kind, same title, and
// pairwise-equal children in the same order. Content leaves compare by
// rendering equivalence through their own Equal methods, so two trees
// built independently from the same inputs are equal regardless of
// object identity. Page presentation extras (nav brand, width cap,
// table of contents) do not participate.
//
// Equal is reflexive, symmetric, and transitive.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind || n.title != other.title {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !childEqual(n.children[i], other.children[i]) {
			return false
		}
	}
	return true
}

// childEqual compares two children of possibly different dynamic
// types. A node never equals a content leaf.
func childEqual(a, b Child) bool {
	if an, ok := a.(*Node); ok {
		bn, ok := b.(*Node)
		return ok && an.Equal(bn)
	}
	if ac, ok := a.(content.Content); ok {
		bc, ok := b.(content.Content)
		return ok && ac.Equal(bc)
	}
	return false
}
