// Package meshcfg loads the YAML configuration file cmd/meshctl reads
// before driving the Mesh Builder and Unravel Solver: subdivision depth,
// mutable-hop radius, solver iteration caps, and the debug color map.
package meshcfg
