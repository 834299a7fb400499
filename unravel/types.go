package unravel

import (
	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/mesh"
	"github.com/nodemesh/router/section"
)

// PointModification overrides one or more of a SegmentPoint's baseline
// coordinates. Unset fields fall back to the baseline value.
type PointModification struct {
	X, Y float64
	HasX bool
	HasY bool

	Z    geom.Z
	HasZ bool
}

// Modifications is a candidate's overlay on top of the section's baseline
// segment-point state.
type Modifications map[section.SegmentPointID]PointModification

func (m Modifications) clone() Modifications {
	out := make(Modifications, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// resolvedPoint is a SegmentPoint's (x, y, z) with any modification applied.
type resolvedPoint struct {
	X, Y float64
	Z    geom.Z
}

func resolvePoint(sec *section.UnravelSection, mods Modifications, id section.SegmentPointID) resolvedPoint {
	sp := sec.SegmentPoints[id]
	rp := resolvedPoint{X: sp.X, Y: sp.Y, Z: sp.Z}
	if m, ok := mods[id]; ok {
		if m.HasX {
			rp.X = m.X
		}
		if m.HasY {
			rp.Y = m.Y
		}
		if m.HasZ {
			rp.Z = m.Z
		}
	}

	return rp
}

// IssueKind tags an UnravelIssue variant.
type IssueKind string

// Issue kinds recognized by the cost model. SingleTransitionCrossing and
// DoubleTransitionCrossing are accounted for in computeG's Ec term but are
// never produced by getIssuesInSection (spec.md §9 open question): this
// core detects vias and same-layer crossings only.
const (
	IssueTransitionVia                        IssueKind = "transition_via"
	IssueSameLayerCrossing                     IssueKind = "same_layer_crossing"
	IssueSingleTransitionCrossing              IssueKind = "single_transition_crossing"
	IssueDoubleTransitionCrossing              IssueKind = "double_transition_crossing"
	IssueSameLayerTraceImbalanceWithLowCap     IssueKind = "same_layer_trace_imbalance_with_low_capacity"
)

// Issue is a detected local problem attached to a specific cell.
// Points holds [A,B] for a transition_via, or [A,B,C,D] for a
// same_layer_crossing (line1=[A,B], line2=[C,D]).
type Issue struct {
	Kind   IssueKind
	NodeID mesh.CellID
	Points []section.SegmentPointID
}

// OperationKind tags a candidate-expanding edit.
type OperationKind string

const (
	OpChangeLayer    OperationKind = "change_layer"
	OpSwapPosition   OperationKind = "swap_position_on_segment"
)

// Operation is a local edit proposed in response to an Issue.
// NewZ is only meaningful for OpChangeLayer; PointIDs holds the targets (one
// or two points for OpChangeLayer, exactly two for OpSwapPosition).
type Operation struct {
	Kind     OperationKind
	NewZ     geom.Z
	PointIDs []section.SegmentPointID
}

// Candidate is a search state: an overlay on the baseline point state, its
// detected issues, and its cost.
type Candidate struct {
	Modifications Modifications
	Issues        []Issue

	G, H, F float64

	OperationsPerformed int

	Hash     string
	FullHash string
}
