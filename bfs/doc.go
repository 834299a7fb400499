// Package bfs walks a core.Graph breadth-first from a single root, recording
// visit order, depth, and parent pointers.
//
// This is a trimmed adaptation of the general-purpose lvlath/bfs walker:
// section.BuildSection only ever needs depth-bounded reachability from one
// root over an unweighted core.Graph, so the per-visit hook callbacks,
// neighbor filtering, and weighted-graph rejection of the original package
// are dropped rather than carried as unused surface.
package bfs
