package routejson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads and validates a SimpleRouteJson document from r. Validation
// failures are malformed-input errors per spec.md §7: the board is rejected
// up front and no attempt is made to recover a partial mesh from it.
func Decode(r io.Reader) (*SimpleRouteJson, error) {
	var doc SimpleRouteJson
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("routejson: decode: %w", err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks a decoded SimpleRouteJson for the malformed-input classes
// named in spec.md §7: unknown layer references, out-of-bounds connection
// points, and layerCount != 2. It does not mutate doc.
func Validate(doc *SimpleRouteJson) error {
	if doc.LayerCount != 2 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedLayerCount, doc.LayerCount)
	}
	if doc.Bounds.MaxX <= doc.Bounds.MinX || doc.Bounds.MaxY <= doc.Bounds.MinY {
		return fmt.Errorf("%w: (%g,%g)-(%g,%g)", ErrDegenerateBounds,
			doc.Bounds.MinX, doc.Bounds.MinY, doc.Bounds.MaxX, doc.Bounds.MaxY)
	}

	names := doc.LayerNames()
	layerSet := make(map[string]bool, len(names))
	for _, n := range names {
		layerSet[n] = true
	}

	for i, ob := range doc.Obstacles {
		for _, l := range ob.Layers {
			if !layerSet[l] {
				return fmt.Errorf("%w: obstacle[%d] layer %q", ErrUnknownLayer, i, l)
			}
		}
	}

	for i, conn := range doc.Connections {
		if conn.Name == "" {
			return fmt.Errorf("%w: connections[%d]", ErrEmptyConnectionName, i)
		}
		if len(conn.PointsToConnect) < 2 {
			return fmt.Errorf("%w: connection %q has %d", ErrTooFewConnectionPoints, conn.Name, len(conn.PointsToConnect))
		}
		for j, p := range conn.PointsToConnect {
			if !layerSet[p.Layer] {
				return fmt.Errorf("%w: connection %q point[%d] layer %q", ErrUnknownLayer, conn.Name, j, p.Layer)
			}
			if p.X < doc.Bounds.MinX || p.X > doc.Bounds.MaxX || p.Y < doc.Bounds.MinY || p.Y > doc.Bounds.MaxY {
				return fmt.Errorf("%w: connection %q point[%d] (%g,%g)", ErrPointOutOfBounds, conn.Name, j, p.X, p.Y)
			}
		}
	}

	return nil
}
