// Package core provides the minimal in-memory graph the Section Builder
// walks: an unweighted, undirected vertex/edge set with adjacency lookup.
//
// This is a trimmed adaptation of the general-purpose lvlath/core.Graph:
// section.BuildSection builds one of these fresh, from a single goroutine,
// every time it runs (spec.md §5's single-threaded cooperative model), and
// only ever needs a simple graph over string vertex IDs (cell IDs and
// segment IDs sharing one ID space) — so the locking, directedness,
// weighting, multi-edge, and self-loop generality of the original package
// is dropped rather than carried as unused surface.
package core
