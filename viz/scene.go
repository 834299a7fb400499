package viz

// Point is a single 2D coordinate within a Scene.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box, drawn center-based to match geom.Rect.
type Rect struct {
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Label   string  `json:"label,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// Line is a straight segment between two points, used for mesh edges and
// section boundaries.
type Line struct {
	A     Point  `json:"a"`
	B     Point  `json:"b"`
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// Circle marks a point of interest, such as an assigned point or a target.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Label  string  `json:"label,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// Scene is a flat collection of graphics objects. Producers append to the
// slices directly; there is no ordering requirement between object kinds.
type Scene struct {
	Title   string   `json:"title,omitempty"`
	Rects   []Rect   `json:"rects,omitempty"`
	Lines   []Line   `json:"lines,omitempty"`
	Circles []Circle `json:"circles,omitempty"`
}

// AddRect appends a labeled, colored rectangle to the scene.
func (s *Scene) AddRect(r Rect) { s.Rects = append(s.Rects, r) }

// AddLine appends a labeled, colored line to the scene.
func (s *Scene) AddLine(l Line) { s.Lines = append(s.Lines, l) }

// AddCircle appends a labeled, colored circle to the scene.
func (s *Scene) AddCircle(c Circle) { s.Circles = append(s.Circles, c) }
