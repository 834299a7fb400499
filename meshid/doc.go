// Package meshid generates stable string identifiers from a monotonic
// counter, used for mesh.Cell, mesh.Segment, and section.SegmentPoint ids
// (spec.md §6: "Cell ids are stable strings generated from a monotonic
// counter"; spec.md §4.3: "assign ids densely (SP0..SPk)").
package meshid
