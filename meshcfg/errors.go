package meshcfg

import "errors"

// ErrInvalidMaxDepth is returned when a loaded config's MaxDepth is negative.
var ErrInvalidMaxDepth = errors.New("meshcfg: maxDepth must be >= 0")

// ErrInvalidMutableHops is returned when a loaded config's MutableHops is negative.
var ErrInvalidMutableHops = errors.New("meshcfg: mutableHops must be >= 0")
