package section

import "errors"

// Sentinel errors for section construction.
var (
	// ErrRootNotFound is returned when the requested root cell has no
	// adjacency entry in the supplied edge set.
	ErrRootNotFound = errors.New("section: root cell not found in edge set")

	// ErrInvalidMutableHops is returned when MutableHops is negative.
	ErrInvalidMutableHops = errors.New("section: MutableHops must be >= 0")
)
