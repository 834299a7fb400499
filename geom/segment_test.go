package geom_test

import (
	"testing"

	"github.com/nodemesh/router/geom"
	"github.com/stretchr/testify/require"
)

func TestSegmentsCross(t *testing.T) {
	cases := []struct {
		name   string
		s1, s2 geom.Segment2D
		want   bool
	}{
		{
			name: "simple X crossing",
			s1:   geom.Segment2D{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 10}},
			s2:   geom.Segment2D{A: geom.Point{X: 0, Y: 10}, B: geom.Point{X: 10, Y: 0}},
			want: true,
		},
		{
			name: "parallel, no crossing",
			s1:   geom.Segment2D{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}},
			s2:   geom.Segment2D{A: geom.Point{X: 0, Y: 5}, B: geom.Point{X: 10, Y: 5}},
			want: false,
		},
		{
			name: "shared endpoint only, not a crossing",
			s1:   geom.Segment2D{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 10}},
			s2:   geom.Segment2D{A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 20, Y: 0}},
			want: false,
		},
		{
			name: "disjoint segments",
			s1:   geom.Segment2D{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 1}},
			s2:   geom.Segment2D{A: geom.Point{X: 5, Y: 5}, B: geom.Point{X: 6, Y: 6}},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, geom.SegmentsCross(tc.s1, tc.s2))
			require.Equal(t, tc.want, geom.SegmentsCross(tc.s2, tc.s1), "crossing must be symmetric")
		})
	}
}
