package section

import (
	"testing"

	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/mesh"
	"github.com/stretchr/testify/require"
)

// chain builds a 4-cell line A-B-C-D connected by segments S_AB, S_BC, S_CD,
// each carrying one assigned point for "net1" or "net2".
func chainFixture() ([]*mesh.Segment, *mesh.EdgeSet) {
	segAB := &mesh.Segment{
		ID: "S_AB", CapacityMeshNodeIDs: [2]mesh.CellID{"A", "B"},
		A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 10, Y: 10},
		AssignedPoints: []mesh.AssignedPoint{
			{X: 10, Y: 5, Z: geom.ZTop, ConnectionName: "net1"},
		},
	}
	segBC := &mesh.Segment{
		ID: "S_BC", CapacityMeshNodeIDs: [2]mesh.CellID{"B", "C"},
		A: geom.Point{X: 20, Y: 0}, B: geom.Point{X: 20, Y: 10},
		AssignedPoints: []mesh.AssignedPoint{
			{X: 20, Y: 5, Z: geom.ZTop, ConnectionName: "net1"},
		},
	}
	segCD := &mesh.Segment{
		ID: "S_CD", CapacityMeshNodeIDs: [2]mesh.CellID{"C", "D"},
		A: geom.Point{X: 30, Y: 0}, B: geom.Point{X: 30, Y: 10},
		AssignedPoints: []mesh.AssignedPoint{
			{X: 30, Y: 5, Z: geom.ZTop, ConnectionName: "net1"},
		},
	}

	segments := []*mesh.Segment{segAB, segBC, segCD}
	es := &mesh.EdgeSet{
		Segments: segments,
		NodeToSegmentIDs: map[mesh.CellID][]mesh.SegmentID{
			"A": {"S_AB"},
			"B": {"S_AB", "S_BC"},
			"C": {"S_BC", "S_CD"},
			"D": {"S_CD"},
		},
		SegmentToNodeIDs: map[mesh.SegmentID][2]mesh.CellID{
			"S_AB": {"A", "B"},
			"S_BC": {"B", "C"},
			"S_CD": {"C", "D"},
		},
	}

	return segments, es
}

func TestBuildSection_HopRadiusFromRootB(t *testing.T) {
	segments, es := chainFixture()

	sec, err := BuildSection("B", segments, es, 1)
	require.NoError(t, err)

	require.ElementsMatch(t, []mesh.CellID{"A", "B", "C"}, sec.MutableNodeIDs)
	require.ElementsMatch(t, []mesh.CellID{"A", "B", "C", "D"}, sec.AllNodeIDs)
	require.ElementsMatch(t, []mesh.CellID{"D"}, sec.ImmutableNodeIDs)
	require.ElementsMatch(t, []mesh.SegmentID{"S_AB", "S_BC", "S_CD"}, sec.MutableSegmentIDs)

	require.True(t, sec.IsMutableSegment("S_AB"))
	require.True(t, sec.IsMutableSegment("S_CD"), "S_CD is incident to the mutable cell C")
}

func TestBuildSection_ZeroHopsRestrictsToRoot(t *testing.T) {
	segments, es := chainFixture()

	sec, err := BuildSection("B", segments, es, 0)
	require.NoError(t, err)

	require.ElementsMatch(t, []mesh.CellID{"B"}, sec.MutableNodeIDs)
	require.ElementsMatch(t, []mesh.CellID{"B", "A", "C"}, sec.AllNodeIDs)
	require.ElementsMatch(t, []mesh.SegmentID{"S_AB", "S_BC"}, sec.MutableSegmentIDs)
}

func TestBuildSection_DirectConnectionsAndPairs(t *testing.T) {
	segments, es := chainFixture()

	sec, err := BuildSection("B", segments, es, 1)
	require.NoError(t, err)

	var spAB, spBC *SegmentPoint
	for _, sp := range sec.SegmentPoints {
		switch sp.SegmentID {
		case "S_AB":
			spAB = sp
		case "S_BC":
			spBC = sp
		}
	}
	require.NotNil(t, spAB)
	require.NotNil(t, spBC)

	require.Contains(t, spAB.DirectlyConnectedSegmentPointIDs, spBC.ID)
	require.Contains(t, spBC.DirectlyConnectedSegmentPointIDs, spAB.ID)

	pairsInB := sec.SegmentPairsInNode["B"]
	require.Len(t, pairsInB, 1)
	require.ElementsMatch(t, []SegmentPointID{spAB.ID, spBC.ID}, pairsInB[0][:])

	// A sees only the S_AB point, so no pair there.
	require.Empty(t, sec.SegmentPairsInNode["A"])
}

func TestBuildSection_Errors(t *testing.T) {
	segments, es := chainFixture()

	_, err := BuildSection("B", segments, es, -1)
	require.ErrorIs(t, err, ErrInvalidMutableHops)

	_, err = BuildSection("Z", segments, es, 1)
	require.ErrorIs(t, err, ErrRootNotFound)
}
