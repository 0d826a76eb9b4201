package pagegrid

import "errors"

// Tree operation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. Callers can use
// errors.Is() for programmatic handling while call sites wrap the
// sentinel with fmt.Errorf("%w: ...") to add the offending key or
// index.
var (
	// ErrNotFound is returned when an index or title lookup matches no
	// child. Reads never create children; only writes do.
	ErrNotFound = errors.New("child not found")

	// ErrAmbiguousTitle is returned when a title lookup matches more
	// than one child after normalization. An ambiguous match is an
	// error, never a silent pick of the first candidate.
	ErrAmbiguousTitle = errors.New("ambiguous title: multiple children match")

	// ErrKeyType is returned when a key is neither an int index nor a
	// string title.
	ErrKeyType = errors.New("unsupported key type: want int or string")

	// ErrSchema is returned when a value cannot be placed at the
	// requested tree depth, for example a titled child under a Column
	// or a multi-entry map whose child order would be undefined.
	ErrSchema = errors.New("value does not fit the layout schema")
)
