package routejson

import "errors"

// Sentinel errors for malformed SimpleRouteJson input (spec.md §7).
var (
	// ErrUnsupportedLayerCount indicates layerCount != 2; this core assumes
	// exactly two conductor layers (spec.md Non-goals).
	ErrUnsupportedLayerCount = errors.New("routejson: layerCount must be 2")

	// ErrUnknownLayer indicates an obstacle or connection point references a
	// layer name outside {"top","bottom"}.
	ErrUnknownLayer = errors.New("routejson: unknown layer name")

	// ErrPointOutOfBounds indicates a connection point lies outside the
	// board's declared bounds.
	ErrPointOutOfBounds = errors.New("routejson: connection point outside bounds")

	// ErrTooFewConnectionPoints indicates a connection has fewer than the
	// required 2 pointsToConnect.
	ErrTooFewConnectionPoints = errors.New("routejson: connection needs at least 2 points")

	// ErrEmptyConnectionName indicates a connection's name field is empty.
	ErrEmptyConnectionName = errors.New("routejson: connection name is empty")

	// ErrDegenerateBounds indicates bounds with zero or negative width/height.
	ErrDegenerateBounds = errors.New("routejson: bounds must have positive width and height")
)
