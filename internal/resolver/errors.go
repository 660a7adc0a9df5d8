package resolver

import "errors"

// Sentinel errors for resolver operations.
var (
	// ErrNilFilters indicates the filter list reference was absent.
	ErrNilFilters = errors.New("filter list is nil")
	// ErrBlankRoot indicates an empty or whitespace root directory path.
	ErrBlankRoot = errors.New("root directory is blank")
	// ErrRootNotFound indicates the root path does not exist as a directory.
	ErrRootNotFound = errors.New("root directory not found")
	// ErrInvalidPattern indicates a segment that could not be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
)
