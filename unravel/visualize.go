package unravel

import (
	"fmt"

	"github.com/nodemesh/router/mesh"
	"github.com/nodemesh/router/section"
	"github.com/nodemesh/router/viz"
)

// Visualize renders the candidate's resolved point positions (its baseline
// overlaid with Modifications) and the cells they sit in, for debug
// dumping only. Points that carry an entry in Modifications are drawn
// orange; points without one are drawn black.
func (c *Candidate) Visualize(sec *section.UnravelSection, cells map[mesh.CellID]*mesh.Cell) *viz.Scene {
	scene := &viz.Scene{Title: fmt.Sprintf("candidate f=%.4g ops=%d", c.F, c.OperationsPerformed)}

	for _, id := range sec.AllNodeIDs {
		cell, ok := cells[id]
		if !ok {
			continue
		}
		scene.AddRect(viz.Rect{
			CenterX: cell.Rect.Center.X,
			CenterY: cell.Rect.Center.Y,
			Width:   cell.Rect.Width,
			Height:  cell.Rect.Height,
			Label:   string(id),
			Color:   "gray",
		})
	}

	for id := range sec.SegmentPoints {
		rp := resolvePoint(sec, c.Modifications, id)
		color := "black"
		if _, changed := c.Modifications[id]; changed {
			color = "orange"
		}
		scene.AddCircle(viz.Circle{
			Center: viz.Point{X: rp.X, Y: rp.Y},
			Radius: 0.5,
			Label:  fmt.Sprintf("%s@%d", id, rp.Z),
			Color:  color,
		})
	}

	for _, issue := range c.Issues {
		pts := make([]viz.Point, 0, len(issue.Points))
		for _, pid := range issue.Points {
			rp := resolvePoint(sec, c.Modifications, pid)
			pts = append(pts, viz.Point{X: rp.X, Y: rp.Y})
		}
		if len(pts) >= 2 {
			scene.AddLine(viz.Line{A: pts[0], B: pts[1], Label: string(issue.Kind), Color: "red"})
		}
		if len(pts) == 4 {
			scene.AddLine(viz.Line{A: pts[2], B: pts[3], Label: string(issue.Kind), Color: "red"})
		}
	}

	return scene
}
