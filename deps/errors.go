package deps

import "errors"

// Resolution errors.
var (
	// ErrUnknownDependency is returned when a collected dependency name
	// has no registered entry. This indicates a content variant that
	// declared a dependency without registering it.
	ErrUnknownDependency = errors.New("unknown dependency")

	// ErrInvalidSource is returned when the provisioning source is
	// neither "cdn" nor "inline".
	ErrInvalidSource = errors.New("invalid dependency source")
)
