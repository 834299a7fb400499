package geom_test

import (
	"testing"

	"github.com/nodemesh/router/geom"
	"github.com/stretchr/testify/require"
)

func TestPointInRect(t *testing.T) {
	r := geom.FromBounds(0, 0, 10, 10)

	require.True(t, geom.PointInRect(geom.Point{X: 0, Y: 0}, r), "inclusive corner")
	require.True(t, geom.PointInRect(geom.Point{X: 10, Y: 10}, r), "inclusive opposite corner")
	require.True(t, geom.PointInRect(geom.Point{X: 5, Y: 5}, r), "center")
	require.False(t, geom.PointInRect(geom.Point{X: 10.001, Y: 5}, r))
	require.False(t, geom.PointInRect(geom.Point{X: -0.001, Y: 5}, r))
}

func TestRectsOverlap(t *testing.T) {
	a := geom.FromBounds(0, 0, 10, 10)

	cases := []struct {
		name string
		b    geom.Rect
		want bool
	}{
		{"fully inside", geom.FromBounds(2, 2, 8, 8), true},
		{"partial overlap", geom.FromBounds(5, 5, 15, 15), true},
		{"shared edge only", geom.FromBounds(10, 0, 20, 10), false},
		{"shared corner only", geom.FromBounds(10, 10, 20, 20), false},
		{"disjoint", geom.FromBounds(20, 20, 30, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, geom.RectsOverlap(a, tc.b))
			require.Equal(t, tc.want, geom.RectsOverlap(tc.b, a), "overlap must be symmetric")
		})
	}
}

func TestFromBounds(t *testing.T) {
	r := geom.FromBounds(10, 20, 30, 60)
	require.Equal(t, 20.0, r.Width)
	require.Equal(t, 40.0, r.Height)
	require.Equal(t, 20.0, r.Center.X)
	require.Equal(t, 40.0, r.Center.Y)
}
