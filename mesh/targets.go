package mesh

import (
	"fmt"

	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/routejson"
)

// target is a single connection endpoint to be tagged onto a cell.
type target struct {
	Point          geom.Point
	Z              geom.Z
	ConnectionName string
}

// resolveTargets flattens every connection's pointsToConnect into targets,
// in input order — ties (multiple target points in one cell) are broken by
// keeping the first one encountered, per spec.md §4.2 "Target detection".
func resolveTargets(input *routejson.SimpleRouteJson) ([]target, error) {
	names := input.LayerNames()
	targets := make([]target, 0, len(input.Connections)*2)
	for _, conn := range input.Connections {
		for _, p := range conn.PointsToConnect {
			z, err := geom.LayerNameToZ(names, p.Layer)
			if err != nil {
				return nil, fmt.Errorf("mesh: connection %q: %w", conn.Name, err)
			}
			targets = append(targets, target{
				Point:          geom.Point{X: p.X, Y: p.Y},
				Z:              z,
				ConnectionName: conn.Name,
			})
		}
	}

	return targets, nil
}

// obstacleInfo is a cell's obstacle resolution over its available layers,
// used by child generation: whether any available layer is touched at all,
// and whether every available layer is fully covered by a single obstacle.
type obstacleInfo struct {
	containsObstacle         bool
	completelyInsideObstacle bool
}

// resolveObstacleInfo computes obstacle flags for rect restricted to
// availableZ, per spec.md §3:
//   - containsObstacle: any obstacle overlaps rect on any available layer.
//   - completelyInsideObstacle: EVERY available layer is fully covered by
//     at least one single obstacle (obstacles are not unioned across
//     layers; a layer is covered only if one obstacle's rect fully
//     contains the cell on that layer).
func resolveObstacleInfo(rect geom.Rect, availableZ geom.LayerSet, obstacles []preparedObstacle) obstacleInfo {
	var info obstacleInfo
	info.completelyInsideObstacle = true

	for _, z := range availableZ {
		layerFullyCovered := false
		for _, ob := range obstacles {
			if !ob.layers.Has(z) {
				continue
			}
			if !geom.RectsOverlap(rect, ob.rect) {
				continue
			}
			info.containsObstacle = true
			if rectFullyContains(ob.rect, rect) {
				layerFullyCovered = true
			}
		}
		if !layerFullyCovered {
			info.completelyInsideObstacle = false
		}
	}

	return info
}

// rectFullyContains reports whether outer fully contains inner (inclusive).
func rectFullyContains(outer, inner geom.Rect) bool {
	return inner.MinX() >= outer.MinX() && inner.MaxX() <= outer.MaxX() &&
		inner.MinY() >= outer.MinY() && inner.MaxY() <= outer.MaxY()
}

// preparedObstacle is a routejson.Obstacle with its geometry and layer set
// resolved once up front.
type preparedObstacle struct {
	rect   geom.Rect
	layers geom.LayerSet
}

func prepareObstacles(input *routejson.SimpleRouteJson) ([]preparedObstacle, error) {
	names := input.LayerNames()
	out := make([]preparedObstacle, 0, len(input.Obstacles))
	for i, ob := range input.Obstacles {
		layers := make(geom.LayerSet, 0, len(ob.Layers))
		for _, l := range ob.Layers {
			z, err := geom.LayerNameToZ(names, l)
			if err != nil {
				return nil, fmt.Errorf("mesh: obstacle[%d]: %w", i, err)
			}
			layers = append(layers, z)
		}
		out = append(out, preparedObstacle{
			rect: geom.Rect{
				Center: geom.Point{X: ob.Center.X, Y: ob.Center.Y},
				Width:  ob.Width,
				Height: ob.Height,
			},
			layers: layers,
		})
	}

	return out, nil
}
