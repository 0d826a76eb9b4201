// Package pagegrid assembles hierarchical documents from heterogeneous
// values and renders them as a nested HTML grid.
//
// A document is a tree of nodes:
//
//	Page -> Section -> Row -> Column -> Content
//
// Callers rarely build every level by hand. Assignment through Set,
// Append, and Ensure auto-creates the intermediate levels, so
//
//	page.Set("Intro", "Hello")
//
// yields a Section titled Intro holding one Row holding one Column
// holding the markdown text. Arbitrary values (strings, file paths,
// images, tabular records, Graphviz DOT) are coerced to content via the
// content package's dispatch registry.
//
// Design decision: the tree is a single-owner, single-writer in-memory
// structure with no internal locking. All operations are synchronous
// and mutate at most one node per call; a failed operation leaves the
// tree in its previous state because replacement children are fully
// built before they are spliced in.
//
// Rendering lives in two places. Node.ToHTML produces the nested body
// fragment deterministically; the render package wraps that fragment in
// a complete standalone document with resolved dependencies.
package pagegrid
