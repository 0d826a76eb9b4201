// Package content provides the leaf content types of a document and
// the dispatcher that wraps arbitrary user values in them.
//
// Each variant wraps one user-supplied value and renders it to an
// embeddable HTML fragment:
//   - Markdown: markdown text converted to HTML
//   - RawHTML: markup passed through verbatim
//   - Image: raster or SVG image embedded as a data URI
//   - Table: tabular records rendered as an HTML table
//   - Figure: a Graphviz graph rendered as vector or raster output
//
// The Adapt function selects a variant for an arbitrary value using an
// ordered list of (predicate, constructor) rules. New variants register
// a rule without modifying the existing dispatch logic.
//
// Design decision: dispatch is an explicit rule list evaluated in
// priority order rather than reflection over registered types. The
// order is part of the contract (a path string must be checked before
// the literal-markdown fallback) and an explicit list keeps that order
// visible and testable.
package content
