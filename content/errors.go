package content

import "errors"

// Content construction and dispatch errors.
//
// Design decision: We use package-level sentinel errors so callers can
// branch with errors.Is() while call sites wrap them with the value or
// path that failed.
var (
	// ErrUnsupportedContent is returned when no dispatch rule matches
	// an input value. The wrapped message names the Go type.
	ErrUnsupportedContent = errors.New("unsupported content type")

	// ErrNotImage is returned when image data cannot be decoded by any
	// registered image format.
	ErrNotImage = errors.New("data is not a recognized image format")

	// ErrEmptyTable is returned when table records contain no rows.
	ErrEmptyTable = errors.New("table records must contain a header row")

	// ErrRaggedTable is returned when table rows have differing column
	// counts. A ragged table would render with silently misaligned
	// cells.
	ErrRaggedTable = errors.New("table rows must all have the header's column count")

	// ErrEmptyFigure is returned when figure DOT source is empty.
	ErrEmptyFigure = errors.New("figure source must not be empty")
)
