package distance

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the distance package.
var (
	// ErrLoad indicates that an edge-list source could not be read or parsed.
	// It is always wrapped in *LoadError; match it with errors.Is.
	ErrLoad = errors.New("distance: cannot load edge list")

	// ErrInvalidEdge indicates an edge with an empty city label or a negative cost.
	ErrInvalidEdge = errors.New("distance: invalid edge")

	// ErrIndexOutOfRange indicates a city index outside 0..N-1.
	ErrIndexOutOfRange = errors.New("distance: city index out of range")
)

// Edge is one undirected, weighted city pair as declared in the input.
type Edge struct {
	From string // first city label
	To   string // second city label
	Cost int64  // non-negative travel cost
}

// LoadError describes a fatal failure while reading an edge list.
// Line is 1-based and zero when the failure is not tied to a line
// (e.g. the file does not exist).
type LoadError struct {
	File string
	Line int
	Err  error
}

// Error implements error.
func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("distance: load %s:%d: %v", e.File, e.Line, e.Err)
	}

	return fmt.Sprintf("distance: load %s: %v", e.File, e.Err)
}

// Unwrap exposes both ErrLoad and the underlying cause to errors.Is / errors.As.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}
