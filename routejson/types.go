package routejson

// Bounds is the board's rectangular routing area.
type Bounds struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// Point2D is a bare (x, y) coordinate, used for obstacle centers.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Obstacle is an axis-aligned rectangular keep-out region. Layers lists the
// layer names it occupies; ConnectedTo lists connection names it is
// electrically part of (so its cell may still carry a target).
type Obstacle struct {
	Center      Point2D  `json:"center"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Type        string   `json:"type"`
	Layers      []string `json:"layers"`
	ConnectedTo []string `json:"connectedTo"`
}

// ConnectionPoint is one endpoint of a Connection: a location and the layer
// it must land on.
type ConnectionPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Layer string  `json:"layer"`
}

// Connection names an electrical net and lists its ≥2 endpoints to connect.
type Connection struct {
	Name            string            `json:"name"`
	PointsToConnect []ConnectionPoint `json:"pointsToConnect"`
}

// SimpleRouteJson is the full board input: bounds, layer count, minimum
// trace width, obstacles, and connections.
type SimpleRouteJson struct {
	Bounds        Bounds       `json:"bounds"`
	LayerCount    int          `json:"layerCount"`
	MinTraceWidth float64      `json:"minTraceWidth"`
	Obstacles     []Obstacle   `json:"obstacles"`
	Connections   []Connection `json:"connections"`
}

// LayerNames returns the board's declared layer names in z order: top (z=0)
// then bottom (z=1). This core fixes layerCount at 2 (spec.md Non-goals),
// so the names are synthesized rather than carried in the JSON, matching
// the reference SimpleRouteJson shape where layer identity comes from
// obstacle/connection "layer" strings, not a separate declaration list.
func (s *SimpleRouteJson) LayerNames() []string {
	return []string{"top", "bottom"}
}
