package geom

// Segment2D is a straight line between two points. It is not the mesh
// package's Segment (a shared cell boundary with an ID and assigned
// points): mesh uses Segment2D only to carry a boundary's two endpoints,
// and unravel uses it for the crossing predicate below.
type Segment2D struct {
	A, B Point
}

// SegmentsCross reports whether s1 and s2 intersect at a point strictly
// interior to both segments. Two segments that merely share an endpoint
// (the common case for two net-pairs that both pass through the same
// SegmentPoint) are NOT considered crossing — spec.md §4.4 requires this
// so that co-incident points at a shared crossing point never themselves
// register as a same_layer_crossing issue.
//
// Complexity: O(1).
func SegmentsCross(s1, s2 Segment2D) bool {
	d1 := cross(sub(s2.B, s2.A), sub(s1.A, s2.A))
	d2 := cross(sub(s2.B, s2.A), sub(s1.B, s2.A))
	d3 := cross(sub(s1.B, s1.A), sub(s2.A, s1.A))
	d4 := cross(sub(s1.B, s1.A), sub(s2.B, s1.A))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return false
}

func sub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }

func cross(a, b Point) float64 { return a.X*b.Y - a.Y*b.X }
