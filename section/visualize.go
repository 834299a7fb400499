package section

import (
	"fmt"

	"github.com/nodemesh/router/mesh"
	"github.com/nodemesh/router/viz"
)

// Visualize renders the section's cells (mutable green, immutable red) and
// its segment points (circles labeled by connection name) as a viz.Scene,
// for debug dumping only. cells supplies the geometry for each node in
// s.AllNodeIDs; a missing entry is skipped rather than erroring, since
// Visualize is diagnostic, not load-bearing.
func (s *UnravelSection) Visualize(cells map[mesh.CellID]*mesh.Cell) *viz.Scene {
	scene := &viz.Scene{Title: fmt.Sprintf("section rooted at %s", s.RootNodeID)}

	mutable := make(map[mesh.CellID]struct{}, len(s.MutableNodeIDs))
	for _, id := range s.MutableNodeIDs {
		mutable[id] = struct{}{}
	}

	for _, id := range s.AllNodeIDs {
		c, ok := cells[id]
		if !ok {
			continue
		}
		color := "red"
		if _, ok := mutable[id]; ok {
			color = "green"
		}
		scene.AddRect(viz.Rect{
			CenterX: c.Rect.Center.X,
			CenterY: c.Rect.Center.Y,
			Width:   c.Rect.Width,
			Height:  c.Rect.Height,
			Label:   string(id),
			Color:   color,
		})
	}

	for id, sp := range s.SegmentPoints {
		scene.AddCircle(viz.Circle{
			Center: viz.Point{X: sp.X, Y: sp.Y},
			Radius: 0.5,
			Label:  fmt.Sprintf("%s/%s", id, sp.ConnectionName),
			Color:  "black",
		})
	}

	return scene
}
