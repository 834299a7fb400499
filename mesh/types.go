package mesh

import "github.com/nodemesh/router/geom"

// CellID uniquely identifies a Cell within a single mesh build.
type CellID string

// SegmentID uniquely identifies a Segment (shared boundary between two
// adjacent cells) within a single mesh build.
type SegmentID string

// Cell is an axis-aligned capacity-mesh node: a rectangle at a given
// subdivision depth, annotated with its available layers and
// obstacle/target flags. Cells are created once by the Builder and are
// immutable thereafter (spec.md §3 Lifecycles).
type Cell struct {
	ID     CellID
	Rect   geom.Rect
	Depth  int
	Parent CellID // "" for the root; kept only for debugging (spec.md §9)

	AvailableZ geom.LayerSet

	ContainsObstacle         bool
	CompletelyInsideObstacle bool

	ContainsTarget        bool
	TargetConnectionName  string
	TargetZ               geom.Z
}

// Center returns the cell's center point.
func (c *Cell) Center() geom.Point { return c.Rect.Center }

// Width returns the cell's full width.
func (c *Cell) Width() float64 { return c.Rect.Width }

// Height returns the cell's full height.
func (c *Cell) Height() float64 { return c.Rect.Height }

// Segment is a shared boundary between two adjacent cells along which
// traces may cross. AssignedPoints holds one point per connection intended
// to cross this boundary; it is populated by an external cell router and
// is read (never produced) by this core's Section Builder and Unravel
// Solver — the Mesh Builder only establishes segment identity and
// geometry.
type Segment struct {
	ID                 SegmentID
	CapacityMeshNodeIDs [2]CellID
	A, B               geom.Point // the shared boundary's two endpoints
	AssignedPoints     []AssignedPoint
}

// AssignedPoint is one connection's crossing sample on a Segment, as
// produced by the (external, out-of-scope) high-density cell router.
type AssignedPoint struct {
	X, Y           float64
	Z              geom.Z
	ConnectionName string
}
