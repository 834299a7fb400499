package unravel

import (
	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/section"
)

// generateOperations enumerates the operations an issue can trigger, per
// spec.md §4.4 "Operations for an issue". Operations that would touch an
// immutable segment are never emitted here; applyOperationToPointModifications
// filters them again as a second line of defense.
func generateOperations(sec *section.UnravelSection, issue Issue) []Operation {
	switch issue.Kind {
	case IssueTransitionVia:
		return transitionViaOperations(sec, issue)
	case IssueSameLayerCrossing:
		return sameLayerCrossingOperations(sec, issue)
	default:
		return nil
	}
}

func transitionViaOperations(sec *section.UnravelSection, issue Issue) []Operation {
	a, b := issue.Points[0], issue.Points[1]
	spA, spB := sec.SegmentPoints[a], sec.SegmentPoints[b]

	var ops []Operation
	if sec.IsMutableSegment(spA.SegmentID) {
		ops = append(ops, Operation{Kind: OpChangeLayer, NewZ: spB.Z, PointIDs: []section.SegmentPointID{a}})
	}
	if sec.IsMutableSegment(spB.SegmentID) {
		ops = append(ops, Operation{Kind: OpChangeLayer, NewZ: spA.Z, PointIDs: []section.SegmentPointID{b}})
	}

	return ops
}

func sameLayerCrossingOperations(sec *section.UnravelSection, issue Issue) []Operation {
	a, b, c, d := issue.Points[0], issue.Points[1], issue.Points[2], issue.Points[3]
	var ops []Operation

	for _, pr := range [][2]section.SegmentPointID{{a, c}, {a, d}, {b, c}, {b, d}} {
		spX, spY := sec.SegmentPoints[pr[0]], sec.SegmentPoints[pr[1]]
		if spX.SegmentID == spY.SegmentID {
			ops = append(ops, Operation{Kind: OpSwapPosition, PointIDs: []section.SegmentPointID{pr[0], pr[1]}})
		}
	}

	spA, spC := sec.SegmentPoints[a], sec.SegmentPoints[c]
	ops = append(ops, Operation{Kind: OpChangeLayer, NewZ: flipZ(spA.Z), PointIDs: []section.SegmentPointID{a, b}})
	ops = append(ops, Operation{Kind: OpChangeLayer, NewZ: flipZ(spC.Z), PointIDs: []section.SegmentPointID{c, d}})

	for _, p := range []section.SegmentPointID{a, b, c, d} {
		sp := sec.SegmentPoints[p]
		ops = append(ops, Operation{Kind: OpChangeLayer, NewZ: flipZ(sp.Z), PointIDs: []section.SegmentPointID{p}})
	}

	mutableOps := ops[:0]
	for _, op := range ops {
		touchesImmutable := false
		for _, id := range op.PointIDs {
			if !sec.IsMutableSegment(sec.SegmentPoints[id].SegmentID) {
				touchesImmutable = true
				break
			}
		}
		if !touchesImmutable {
			mutableOps = append(mutableOps, op)
		}
	}

	return mutableOps
}

func flipZ(z geom.Z) geom.Z {
	if z == geom.ZTop {
		return geom.ZBottom
	}

	return geom.ZTop
}

// applyOperationToPointModifications produces a new modifications map on
// top of mods, per spec.md §4.4. Targets on immutable segments are
// silently dropped rather than applied.
func applyOperationToPointModifications(sec *section.UnravelSection, mods Modifications, op Operation) Modifications {
	next := mods.clone()

	switch op.Kind {
	case OpChangeLayer:
		for _, id := range op.PointIDs {
			sp := sec.SegmentPoints[id]
			if sp == nil || !sec.IsMutableSegment(sp.SegmentID) {
				continue
			}
			m := next[id]
			m.HasZ = true
			m.Z = op.NewZ
			next[id] = m
		}
	case OpSwapPosition:
		if len(op.PointIDs) != 2 {
			return next
		}
		x, y := op.PointIDs[0], op.PointIDs[1]
		spX, spY := sec.SegmentPoints[x], sec.SegmentPoints[y]
		rx := resolvePoint(sec, mods, x)
		ry := resolvePoint(sec, mods, y)
		if spX != nil && sec.IsMutableSegment(spX.SegmentID) {
			m := next[x]
			m.HasX, m.X = true, ry.X
			m.HasY, m.Y = true, ry.Y
			next[x] = m
		}
		if spY != nil && sec.IsMutableSegment(spY.SegmentID) {
			m := next[y]
			m.HasX, m.X = true, rx.X
			m.HasY, m.Y = true, rx.Y
			next[y] = m
		}
	}

	return next
}
