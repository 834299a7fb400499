// Package section builds an UnravelSection: the bounded neighborhood of a
// mesh region, together with the segment-point graph and pair index the
// Unravel Solver searches over. Construction walks the bipartite
// cell/segment adjacency with a breadth-first traversal, alternating one
// hop across a segment and one hop into the next cell.
package section
