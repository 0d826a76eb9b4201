// Package log provides logging helpers built on the standard slog
// package, with automatic truncation of oversized attribute values.
//
// Rendered documents are routinely hundreds of kilobytes of HTML.
// Logging one verbatim makes log output unusable and can leak entire
// documents into shared log storage. The TruncateHandler caps string
// attribute values at a fixed length while recording the original
// size, so a debug line like
//
//	logger.Debug("document rendered", "html", html)
//
// stays a single readable line regardless of document size.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("document rendered", "html", html, "bytes", len(html))
package log
