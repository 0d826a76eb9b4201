package pagegrid

import (
	"fmt"

	"github.com/nao1215/pagegrid/content"
)

// Titled pairs a title with a value during assignment. Assigning a
// sequence of Titled values to a Row yields one titled Column per
// entry. A single-entry map[string]any is accepted as the same thing.
type Titled struct {
	Title string
	Value any
}

// asTitled reports whether v carries an explicit title. Multi-entry
// maps are rejected by the caller because their child order would be
// undefined.
func asTitled(v any) (Titled, bool, error) {
	switch t := v.(type) {
	case Titled:
		return t, true, nil
	case map[string]any:
		if len(t) != 1 {
			return Titled{}, false, fmt.Errorf("%w: map key must be a single title, got %d entries", ErrSchema, len(t))
		}
		for title, value := range t {
			return Titled{Title: title, Value: value}, true, nil
		}
	}
	return Titled{}, false, nil
}

// flatten expands []any sequences one level so that Append(values...)
// and Set(key, []any{...}) see the same element stream.
func flatten(values []any) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		if seq, ok := v.([]any); ok {
			out = append(out, seq...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// smartWrap coerces a value stream into children that fit directly
// under parent, synthesizing the missing intermediate levels so content
// always terminates at Column depth:
//
//   - under a Column (or Card), every value is adapted to content;
//   - under a Row, every already-fitting node passes through and every
//     other value becomes its own Column;
//   - under a Page or Section, already-fitting nodes pass through and
//     runs of loose values between them are gathered into one child of
//     the next level down, recursively.
//
// Titled values always produce their own titled child. The returned
// slice is fully built before the caller splices it in, so a wrap
// failure leaves the tree untouched.
func smartWrap(parent *Node, values []any) ([]Child, error) {
	values = flatten(values)
	spec := parent.kind.spec()

	if spec.contentHolder {
		out := make([]Child, 0, len(values))
		for _, v := range values {
			if _, titled, err := asTitled(v); err != nil {
				return nil, err
			} else if titled {
				return nil, fmt.Errorf("%w: a Column holds content, not titled children", ErrSchema)
			}
			c, err := content.Adapt(v)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
		return out, nil
	}

	isRow := spec.base == KindRow
	var out []Child
	var loose []any

	flush := func() error {
		if len(loose) == 0 {
			return nil
		}
		child, err := newChildNode(parent, "", loose)
		if err != nil {
			return err
		}
		out = append(out, child)
		loose = nil
		return nil
	}

	for _, v := range values {
		if node, ok := v.(*Node); ok && node.kind.fits(spec.child) {
			if err := flush(); err != nil {
				return nil, err
			}
			out = append(out, node)
			continue
		}

		titled, isTitled, err := asTitled(v)
		if err != nil {
			return nil, err
		}
		if isTitled {
			if err := flush(); err != nil {
				return nil, err
			}
			child, err := newChildNode(parent, titled.Title, []any{titled.Value})
			if err != nil {
				return nil, err
			}
			out = append(out, child)
			continue
		}

		if isRow {
			child, err := newChildNode(parent, "", []any{v})
			if err != nil {
				return nil, err
			}
			out = append(out, child)
			continue
		}
		loose = append(loose, v)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

// newChildNode creates a node of parent's child kind holding the
// wrapped values.
func newChildNode(parent *Node, title string, values []any) (*Node, error) {
	child := &Node{kind: parent.kind.spec().child, title: title}
	wrapped, err := smartWrap(child, values)
	if err != nil {
		return nil, err
	}
	child.children = wrapped
	return child, nil
}

// wrapOne coerces value into exactly one child fitting under parent.
// Used by keyed assignment, where one key names one child: a fitting
// node passes through, anything else (including a value sequence)
// becomes a single new child of the next level down.
func wrapOne(parent *Node, value any) (Child, error) {
	spec := parent.kind.spec()

	if node, ok := value.(*Node); ok && !spec.contentHolder && node.kind.fits(spec.child) {
		return node, nil
	}

	if spec.contentHolder {
		if _, titled, err := asTitled(value); err != nil {
			return nil, err
		} else if titled {
			return nil, fmt.Errorf("%w: a Column holds content, not titled children", ErrSchema)
		}
		return content.Adapt(value)
	}

	values := []any{value}
	if seq, ok := value.([]any); ok {
		values = seq
	}
	return newChildNode(parent, "", values)
}
