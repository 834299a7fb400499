package unravel

import "errors"

// Sentinel errors for solver construction and stepping.
var (
	// ErrNilSection is returned when NewSolver receives a nil section.
	ErrNilSection = errors.New("unravel: section is nil")

	// ErrUnknownCell is returned when computeG is asked about a cell absent
	// from the cells map supplied at construction — a programmer error
	// (spec.md §7: internal invariant violations are not recoverable).
	ErrUnknownCell = errors.New("unravel: cell not present in mesh snapshot")
)
