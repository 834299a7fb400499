package unravel

import (
	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/section"
)

// getIssuesInSection evaluates every segment-point pair recorded per cell
// in sec, with mods applied, per spec.md §4.4. It is a pure function of
// (sec, mods): calling it twice with identical inputs yields identical
// results (order is stable — nodes and pairs are walked in the section's
// own stored order, itself deterministic).
func getIssuesInSection(sec *section.UnravelSection, mods Modifications) []Issue {
	var issues []Issue

	for _, nodeID := range sec.AllNodeIDs {
		pairs := sec.SegmentPairsInNode[nodeID]

		type resolvedPair struct {
			ids  [2]section.SegmentPointID
			a, b resolvedPoint
		}
		sameLayer := make([]resolvedPair, 0, len(pairs))

		for _, pair := range pairs {
			a := resolvePoint(sec, mods, pair[0])
			b := resolvePoint(sec, mods, pair[1])
			if a.Z != b.Z {
				issues = append(issues, Issue{
					Kind:   IssueTransitionVia,
					NodeID: nodeID,
					Points: []section.SegmentPointID{pair[0], pair[1]},
				})

				continue
			}
			sameLayer = append(sameLayer, resolvedPair{ids: pair, a: a, b: b})
		}

		for i := 0; i < len(sameLayer); i++ {
			for j := i + 1; j < len(sameLayer); j++ {
				p1, p2 := sameLayer[i], sameLayer[j]
				if p1.a.Z != p2.a.Z {
					continue
				}
				line1 := geom.Segment2D{A: geom.Point{X: p1.a.X, Y: p1.a.Y}, B: geom.Point{X: p1.b.X, Y: p1.b.Y}}
				line2 := geom.Segment2D{A: geom.Point{X: p2.a.X, Y: p2.a.Y}, B: geom.Point{X: p2.b.X, Y: p2.b.Y}}
				if !geom.SegmentsCross(line1, line2) {
					continue
				}
				issues = append(issues, Issue{
					Kind:   IssueSameLayerCrossing,
					NodeID: nodeID,
					Points: []section.SegmentPointID{p1.ids[0], p1.ids[1], p2.ids[0], p2.ids[1]},
				})
			}
		}
	}

	return issues
}
