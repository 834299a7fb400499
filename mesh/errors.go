package mesh

import "errors"

// Sentinel errors for mesh construction.
var (
	// ErrNilInput is returned when NewBuilder receives a nil SimpleRouteJson.
	ErrNilInput = errors.New("mesh: input is nil")

	// ErrDegenerateBounds is returned when the board bounds have zero or
	// negative width/height.
	ErrDegenerateBounds = errors.New("mesh: bounds must have positive width and height")

	// ErrInvalidMaxDepth is returned when Config.MaxDepth is not >= 1.
	ErrInvalidMaxDepth = errors.New("mesh: MaxDepth must be >= 1")

	// ErrCellNotFound signals a reference to an unknown CellID. No function
	// in this package returns it; BuildEdges reports no errors.
	ErrCellNotFound = errors.New("mesh: cell not found")
)
