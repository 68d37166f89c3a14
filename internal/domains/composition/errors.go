package composition

import "errors"

var (
	// ErrNotFound is returned when a composition id does not exist.
	ErrNotFound = errors.New("composition not found")

	// ErrInvalidComposition wraps aggregate invariant violations.
	ErrInvalidComposition = errors.New("invalid composition")
)
