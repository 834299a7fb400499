// Package unravel implements the best-first search that rearranges trace
// layer/position assignments inside a section's mutable region to
// eliminate same-layer crossings and reduce via count. The search is
// cooperative: Solver.Step performs one candidate expansion and returns,
// so a caller can interleave visualization or cancellation between steps.
package unravel
