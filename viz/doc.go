// Package viz defines a small JSON-serializable graphics-object model used
// by mesh and section to dump debug snapshots of their internal state. It
// has no rendering logic of its own; a Scene is meant to be written out and
// inspected with an external viewer.
package viz
