package geom

// Point is a location in the routing plane.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle described by its center and full
// width/height (not half-extents), matching the board/cell convention used
// throughout the mesh package.
type Rect struct {
	Center Point
	Width  float64
	Height float64
}

// MinX returns the rectangle's left edge.
func (r Rect) MinX() float64 { return r.Center.X - r.Width/2 }

// MaxX returns the rectangle's right edge.
func (r Rect) MaxX() float64 { return r.Center.X + r.Width/2 }

// MinY returns the rectangle's bottom edge.
func (r Rect) MinY() float64 { return r.Center.Y - r.Height/2 }

// MaxY returns the rectangle's top edge.
func (r Rect) MaxY() float64 { return r.Center.Y + r.Height/2 }

// PointInRect reports whether p lies within r, edges included.
// Complexity: O(1).
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// RectsOverlap reports whether a and b share positive-area overlap.
// Rectangles that only touch along a shared edge or corner do not overlap.
// Complexity: O(1).
func RectsOverlap(a, b Rect) bool {
	if a.MaxX() <= b.MinX() || b.MaxX() <= a.MinX() {
		return false
	}
	if a.MaxY() <= b.MinY() || b.MaxY() <= a.MinY() {
		return false
	}

	return true
}

// FromBounds builds a Rect from explicit min/max edges, as used when
// constructing the mesh root cell from routejson.Bounds.
func FromBounds(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Center: Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
