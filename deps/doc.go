// Package deps maps logical content dependency identifiers to the HTML
// needed to provision them.
//
// Content variants declare dependencies by name ("bootstrap" for the
// base stylesheet); the layout tree collects the distinct names in
// first-encountered order; this package resolves each name to either a
// CDN link tag or an inline-embedded asset depending on the configured
// provisioning source.
//
// Design decision: the collector (in the root package) is oblivious to
// the provisioning source. Only Resolve knows whether output is
// reference-by-link or self-contained, so switching modes never touches
// the tree.
package deps
