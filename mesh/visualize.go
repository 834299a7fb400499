package mesh

import (
	"fmt"

	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/viz"
)

// Visualize renders the finished cells and derived edges as a viz.Scene,
// for debug dumping only — it is not consumed by any other core package.
func (b *Builder) Visualize(es *EdgeSet) *viz.Scene {
	scene := &viz.Scene{Title: "capacity mesh"}

	for _, c := range b.finished {
		color := "green"
		switch {
		case c.ContainsTarget:
			color = "blue"
		case c.ContainsObstacle:
			color = "red"
		}
		scene.AddRect(viz.Rect{
			CenterX: c.Rect.Center.X,
			CenterY: c.Rect.Center.Y,
			Width:   c.Rect.Width,
			Height:  c.Rect.Height,
			Label:   fmt.Sprintf("%s@%s", c.ID, layerLabel(c.AvailableZ)),
			Color:   color,
		})
	}

	if es != nil {
		for _, s := range es.Segments {
			scene.AddLine(viz.Line{
				A:     viz.Point{X: s.A.X, Y: s.A.Y},
				B:     viz.Point{X: s.B.X, Y: s.B.Y},
				Label: string(s.ID),
				Color: "black",
			})
		}
	}

	return scene
}

func layerLabel(zs geom.LayerSet) string {
	label := ""
	for i, z := range zs {
		if i > 0 {
			label += ","
		}
		label += fmt.Sprintf("%d", z)
	}

	return label
}
