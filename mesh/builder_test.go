package mesh

import (
	"context"
	"testing"

	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/routejson"
	"github.com/stretchr/testify/require"
)

func meshUnderObstacle1() *routejson.SimpleRouteJson {
	return &routejson.SimpleRouteJson{
		Bounds:     routejson.Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100},
		LayerCount: 2,
		Obstacles: []routejson.Obstacle{
			{Center: routejson.Point2D{X: 50, Y: 50}, Width: 20, Height: 30, Layers: []string{"top", "bottom"}},
			{Center: routejson.Point2D{X: 80, Y: 50}, Width: 20, Height: 30, Layers: []string{"top"}},
			{Center: routejson.Point2D{X: 80, Y: 20}, Width: 20, Height: 34, Layers: []string{"bottom"}},
		},
		Connections: []routejson.Connection{
			{Name: "net1", PointsToConnect: []routejson.ConnectionPoint{
				{X: 5, Y: 5, Layer: "top"},
				{X: 95, Y: 95, Layer: "top"},
			}},
			{Name: "net2", PointsToConnect: []routejson.ConnectionPoint{
				{X: 5, Y: 95, Layer: "bottom"},
				{X: 95, Y: 5, Layer: "bottom"},
			}},
		},
	}
}

// assertInvariants checks spec property #1 against every finished cell.
func assertInvariants(t *testing.T, bounds geom.Rect, cells []*Cell) {
	t.Helper()
	for _, c := range cells {
		require.NotEmpty(t, c.AvailableZ, "cell %s has empty availableZ", c.ID)
		require.GreaterOrEqual(t, c.Rect.MinX(), bounds.MinX()-1e-9)
		require.LessOrEqual(t, c.Rect.MaxX(), bounds.MaxX()+1e-9)
		require.GreaterOrEqual(t, c.Rect.MinY(), bounds.MinY()-1e-9)
		require.LessOrEqual(t, c.Rect.MaxY(), bounds.MaxY()+1e-9)

		obstacleFree := !c.ContainsObstacle
		singleLayer := len(c.AvailableZ) == 1
		require.True(t, obstacleFree || c.ContainsTarget || singleLayer,
			"cell %s is obstacle-laden, non-target, multi-layer", c.ID)

		require.False(t, c.CompletelyInsideObstacle && !c.ContainsTarget,
			"cell %s is fully blocked on all available layers without a target", c.ID)
	}
}

func TestBuilder_S1_MeshUnderObstacle(t *testing.T) {
	input := meshUnderObstacle1()
	b, err := NewBuilder(input, Config{MaxDepth: 7})
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))

	cells := b.Finished()
	require.NotEmpty(t, cells)

	bounds := geom.FromBounds(0, 0, 100, 100)
	assertInvariants(t, bounds, cells)

	var sawTopOnlyFree, sawBottomOnlyFree bool
	for _, c := range cells {
		if len(c.AvailableZ) != 1 {
			continue
		}
		// Beneath the top-only obstacle (80,50,20,30): bottom remains routable.
		if c.Rect.Center.X > 70 && c.Rect.Center.X < 90 && c.Rect.Center.Y > 35 && c.Rect.Center.Y < 65 {
			if c.AvailableZ[0] == geom.ZBottom {
				sawBottomOnlyFree = true
			}
		}
		// Beneath the bottom-only obstacle (80,20,20,34): top remains routable.
		if c.Rect.Center.X > 70 && c.Rect.Center.X < 90 && c.Rect.Center.Y > 3 && c.Rect.Center.Y < 37 {
			if c.AvailableZ[0] == geom.ZTop {
				sawTopOnlyFree = true
			}
		}
	}
	require.True(t, sawBottomOnlyFree, "expected a z-subdivided bottom-only cell under the top-only obstacle")
	require.True(t, sawTopOnlyFree, "expected a z-subdivided top-only cell under the bottom-only obstacle")
}

func TestBuilder_S5_TargetInsideObstacleWithOneFreeLayer(t *testing.T) {
	input := &routejson.SimpleRouteJson{
		Bounds:     routejson.Bounds{MinX: 0, MaxX: 20, MinY: 0, MaxY: 20},
		LayerCount: 2,
		Obstacles: []routejson.Obstacle{
			{Center: routejson.Point2D{X: 10, Y: 10}, Width: 20, Height: 20, Layers: []string{"top", "bottom"}},
		},
		Connections: []routejson.Connection{
			{Name: "net1", PointsToConnect: []routejson.ConnectionPoint{
				{X: 6, Y: 6, Layer: "bottom"},
				{X: 1, Y: 1, Layer: "bottom"},
			}},
		},
	}

	b, err := NewBuilder(input, Config{MaxDepth: 4})
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))

	var target *Cell
	for _, c := range b.Finished() {
		if c.ContainsTarget && c.TargetConnectionName == "net1" && geom.PointInRect(geom.Point{X: 6, Y: 6}, c.Rect) {
			target = c
			break
		}
	}
	require.NotNil(t, target, "no finished cell found containing the target endpoint")
	require.Equal(t, geom.Single(geom.ZBottom), target.AvailableZ)
}

func TestNewBuilder_Validation(t *testing.T) {
	_, err := NewBuilder(nil, Config{})
	require.ErrorIs(t, err, ErrNilInput)

	_, err = NewBuilder(&routejson.SimpleRouteJson{
		Bounds: routejson.Bounds{MinX: 10, MaxX: 10, MinY: 0, MaxY: 10},
	}, Config{})
	require.ErrorIs(t, err, ErrDegenerateBounds)

	_, err = NewBuilder(&routejson.SimpleRouteJson{
		Bounds: routejson.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
	}, Config{MaxDepth: -1})
	require.ErrorIs(t, err, ErrInvalidMaxDepth)
}

func TestBuilder_Run_EmptyBoard_CoversBounds(t *testing.T) {
	input := &routejson.SimpleRouteJson{
		Bounds: routejson.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
	}
	b, err := NewBuilder(input, Config{MaxDepth: 3})
	require.NoError(t, err)
	require.NoError(t, b.Run(context.Background()))

	// The root is unconditionally split once; with no obstacles and no
	// targets, none of its four quadrant children need further subdividing.
	cells := b.Finished()
	require.Len(t, cells, 4)

	var area float64
	for _, c := range cells {
		require.Equal(t, geom.Both(), c.AvailableZ)
		area += c.Rect.Width * c.Rect.Height
	}
	require.InDelta(t, 100.0, area, 1e-9)
}
