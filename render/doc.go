// Package render assembles complete standalone documents from layout
// trees.
//
// The pagegrid package renders a tree to a body fragment; this package
// wraps that fragment in a full HTML document with resolved
// dependencies, embedded styling, and relocated scripts, and writes it
// to disk as HTML or PDF.
//
// Design decision: PDF conversion always provisions dependencies
// inline regardless of the configured source. The external engine has
// no business fetching stylesheets over the network, and a
// self-contained document converts identically on any machine.
//
// File writes are atomic: output is staged in a temporary file and
// renamed into place, so a failed render or conversion never leaves a
// partial file at the destination.
package render
