// Package mesh builds the capacity mesh: an adaptive quad-tree subdivision
// of the routing plane into Cells, with z-axis (layer) subdivision where an
// obstacle blocks one conductor layer but leaves the other free.
//
// Construction is stepwise (Builder.Step), matching the cooperative
// single-threaded execution model of spec.md §5: each Step pops one
// unfinished cell from the worklist, generates its quadrant children, and
// either finalizes or re-queues each child. Builder.Run loops Step until
// the worklist is empty or a context is cancelled, mirroring the teacher's
// bfs.BFS / dijkstra.Dijkstra "stepwise primitive + batteries-included
// entry point" split.
package mesh
