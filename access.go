package pagegrid

import "fmt"

// normalizeIndex converts a possibly negative index to a slice
// position. Negative indices count from the end, -1 being the last
// child. The second return reports whether the result is in range.
func normalizeIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	return i, i >= 0 && i < length
}

// matchTitle returns the positions of children whose normalized title
// equals the normalized key.
func (n *Node) matchTitle(key string) []int {
	want := normalizeTitle(key)
	if want == "" {
		return nil
	}
	var idx []int
	for i, child := range n.children {
		node, ok := child.(*Node)
		if ok && normalizeTitle(node.title) == want {
			idx = append(idx, i)
		}
	}
	return idx
}

// At returns the child at index i. Negative indices count from the
// end. Out-of-range indices fail with ErrNotFound; reads never create
// children.
func (n *Node) At(i int) (Child, error) {
	pos, ok := normalizeIndex(i, len(n.children))
	if !ok {
		return nil, fmt.Errorf("%w: index %d with %d children", ErrNotFound, i, len(n.children))
	}
	return n.children[pos], nil
}

// Lookup returns the child whose title matches key. Matching is
// case/format-insensitive: the stored title and the key are compared
// after identifier normalization. Zero matches fail with ErrNotFound
// and multiple matches with ErrAmbiguousTitle.
func (n *Node) Lookup(key string) (Child, error) {
	idx := n.matchTitle(key)
	switch len(idx) {
	case 0:
		return nil, fmt.Errorf("%w: title %q", ErrNotFound, key)
	case 1:
		return n.children[idx[0]], nil
	default:
		return nil, fmt.Errorf("%w: title %q", ErrAmbiguousTitle, key)
	}
}

// Get returns the child addressed by key: an int index (via At) or a
// string title (via Lookup). Numeric keys are strictly positional and
// never match a numeric-looking title.
func (n *Node) Get(key any) (Child, error) {
	switch k := key.(type) {
	case int:
		return n.At(k)
	case string:
		return n.Lookup(k)
	default:
		return nil, fmt.Errorf("%w: %T", ErrKeyType, key)
	}
}

// Ensure returns the node addressed by key, creating it if absent.
// This is the write-path counterpart of Get for chained assignment:
//
//	section, err := page.Ensure("Results")
//
// creates the Section on first use and finds it afterwards.
// A string key creates a titled child of the next level down; an int
// key equal to Len() appends an untitled one. Ensure fails with
// ErrSchema on content-holding nodes, whose children are leaves.
func (n *Node) Ensure(key any) (*Node, error) {
	spec := n.kind.spec()
	if spec.contentHolder {
		return nil, fmt.Errorf("%w: %s children are content, not nodes", ErrSchema, n.kind)
	}

	switch k := key.(type) {
	case int:
		pos, ok := normalizeIndex(k, len(n.children))
		if ok {
			node, isNode := n.children[pos].(*Node)
			if !isNode {
				return nil, fmt.Errorf("%w: child at index %d is content", ErrSchema, k)
			}
			return node, nil
		}
		if k != len(n.children) {
			return nil, fmt.Errorf("%w: index %d with %d children", ErrNotFound, k, len(n.children))
		}
		child := &Node{kind: spec.child}
		n.children = append(n.children, child)
		return child, nil
	case string:
		idx := n.matchTitle(k)
		switch len(idx) {
		case 0:
			child := &Node{kind: spec.child, title: k}
			n.children = append(n.children, child)
			return child, nil
		case 1:
			return n.children[idx[0]].(*Node), nil
		default:
			return nil, fmt.Errorf("%w: title %q", ErrAmbiguousTitle, k)
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrKeyType, key)
	}
}

// Set places value at key, wrapping it through auto-layout first.
//
// An int key replaces the child at that position in place, keeping the
// replaced child's title when the new child has none; an index equal
// to Len() appends. A string key replaces the single child with that
// title, or appends a new titled child when none exists. The
// replacement child is fully built before the tree is touched, so a
// failed Set leaves all siblings intact.
func (n *Node) Set(key any, value any) error {
	switch k := key.(type) {
	case int:
		return n.setIndex(k, value)
	case string:
		return n.setTitle(k, value)
	default:
		return fmt.Errorf("%w: %T", ErrKeyType, key)
	}
}

func (n *Node) setIndex(i int, value any) error {
	pos, ok := normalizeIndex(i, len(n.children))
	if !ok && i != len(n.children) {
		return fmt.Errorf("%w: index %d with %d children", ErrNotFound, i, len(n.children))
	}

	child, err := wrapOne(n, value)
	if err != nil {
		return err
	}

	if !ok {
		n.children = append(n.children, child)
		return nil
	}
	if node, isNode := child.(*Node); isNode && node.title == "" {
		if prev, wasNode := n.children[pos].(*Node); wasNode {
			node.title = prev.title
		}
	}
	n.children[pos] = child
	return nil
}

func (n *Node) setTitle(key string, value any) error {
	if n.kind.spec().contentHolder {
		return fmt.Errorf("%w: %s children are untitled content", ErrSchema, n.kind)
	}

	idx := n.matchTitle(key)
	if len(idx) > 1 {
		return fmt.Errorf("%w: title %q", ErrAmbiguousTitle, key)
	}

	child, err := wrapOne(n, value)
	if err != nil {
		return err
	}
	if node, isNode := child.(*Node); isNode && key != "" {
		node.title = key
	}

	if len(idx) == 1 {
		n.children[idx[0]] = child
		return nil
	}
	n.children = append(n.children, child)
	return nil
}

// Append wraps each value through auto-layout and adds the results
// after the existing children. Values are either built entirely or not
// added at all.
func (n *Node) Append(values ...any) error {
	wrapped, err := smartWrap(n, values)
	if err != nil {
		return err
	}
	n.children = append(n.children, wrapped...)
	return nil
}

// SetChildren replaces all children with the wrapped values. On error
// the existing children are kept.
func (n *Node) SetChildren(values ...any) error {
	wrapped, err := smartWrap(n, values)
	if err != nil {
		return err
	}
	n.children = wrapped
	return nil
}

// Delete removes the child addressed by key (int index, negative
// allowed, or string title) and closes the gap so later children shift
// down one position.
func (n *Node) Delete(key any) error {
	switch k := key.(type) {
	case int:
		pos, ok := normalizeIndex(k, len(n.children))
		if !ok {
			return fmt.Errorf("%w: index %d with %d children", ErrNotFound, k, len(n.children))
		}
		n.children = append(n.children[:pos], n.children[pos+1:]...)
		return nil
	case string:
		idx := n.matchTitle(k)
		switch len(idx) {
		case 0:
			return fmt.Errorf("%w: title %q", ErrNotFound, k)
		case 1:
			pos := idx[0]
			n.children = append(n.children[:pos], n.children[pos+1:]...)
			return nil
		default:
			return fmt.Errorf("%w: title %q", ErrAmbiguousTitle, k)
		}
	default:
		return fmt.Errorf("%w: %T", ErrKeyType, key)
	}
}

// SetGrid arranges values into rows of nCols columns under a Section
// or CardSection, padding the final row with spacers so every row has
// the same number of cells. Existing children are replaced.
func (n *Node) SetGrid(nCols int, values ...any) error {
	spec := n.kind.spec()
	if spec.base != KindSection {
		return fmt.Errorf("%w: grids apply to sections, not %s", ErrSchema, n.kind)
	}
	if nCols < 1 {
		return fmt.Errorf("%w: grid needs at least one column", ErrSchema)
	}

	values = flatten(values)
	var rows []Child
	for start := 0; start < len(values); start += nCols {
		end := min(start+nCols, len(values))
		chunk := values[start:end]

		row, err := newChildNode(n, "", chunk)
		if err != nil {
			return err
		}
		for row.Len() < nCols {
			row.children = append(row.children, NewSpacer())
		}
		rows = append(rows, row)
	}
	n.children = rows
	return nil
}
