// Package options provides document output options and their YAML
// persistence.
//
// Options control how a page is provisioned (CDN links vs inline
// embedding), how figures are rendered (SVG vs PNG), and page-level
// defaults such as the maximum content width.
//
// Design decision: options are an explicit value threaded through the
// Page constructor and render calls rather than a process-wide mutable
// object. Loading defaults from a file is a separate, explicit step
// (Find + Load) performed once at the outermost entry point. This keeps
// rendering deterministic and makes per-document overrides trivial.
package options
