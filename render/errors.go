package render

import "errors"

// Rendering and conversion errors.
//
// Design decision: We use package-level sentinel errors so callers can
// distinguish a missing PDF engine (an environment problem the user
// can fix by installing it) from a failed conversion (a document or
// engine problem) with errors.Is().
var (
	// ErrNotPage is returned when a document-level operation receives a
	// node that is not a Page. Only pages carry the title, nav brand,
	// and options a standalone document needs.
	ErrNotPage = errors.New("node is not a page")

	// ErrEngineNotFound is returned when the external PDF engine is not
	// installed or not on PATH.
	ErrEngineNotFound = errors.New("pdf engine not found: install weasyprint or configure a converter")

	// ErrConversionFailed is returned when the PDF engine runs but
	// exits unsuccessfully.
	ErrConversionFailed = errors.New("pdf conversion failed")
)
