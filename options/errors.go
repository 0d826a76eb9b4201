package options

import "errors"

// Option validation and loading errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers
// to use errors.Is() for programmatic handling while still providing
// human-readable messages.
var (
	// ErrConfigNotFound is returned when no options file exists at any
	// searched location. Callers that did not ask for an explicit path
	// should treat this as "use defaults", not as a failure.
	ErrConfigNotFound = errors.New("options file not found")

	// ErrInvalidSource is returned when the dependency source is
	// neither "cdn" nor "inline".
	ErrInvalidSource = errors.New("invalid dependency source: must be 'cdn' or 'inline'")

	// ErrInvalidFigureFormat is returned when the figure format is
	// neither "svg" nor "png".
	ErrInvalidFigureFormat = errors.New("invalid figure format: must be 'svg' or 'png'")

	// ErrInvalidMaxWidth is returned when the maximum page width is
	// zero or negative.
	ErrInvalidMaxWidth = errors.New("invalid max width: must be positive")
)
