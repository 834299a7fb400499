// Package geom provides the axis-aligned geometry primitives shared by the
// mesh and unravel packages: point/rect containment and overlap tests,
// layer-name↔z-index mapping, and the strict segment-intersection predicate
// used to detect same-layer trace crossings.
//
// All coordinates are float64. Inputs in scope are exact axis-aligned
// rectangles and rational crossing points, so no epsilon/tolerance handling
// is performed — callers must not feed near-degenerate geometry and expect
// fuzzy matching.
package geom
