package section

import (
	"fmt"
	"sort"

	"github.com/nodemesh/router/bfs"
	"github.com/nodemesh/router/core"
	"github.com/nodemesh/router/mesh"
	"github.com/nodemesh/router/meshid"
)

// DefaultMutableHops is the MUTABLE_HOPS default used when a caller has no
// specific radius requirement.
const DefaultMutableHops = 1

// BuildSection constructs an UnravelSection rooted at rootNodeID. segments
// carries the deduplicated, already-point-assigned Segment list produced by
// the mesh package and an external cell router; es carries its bipartite
// adjacency maps. mutableHops is spec.md's MUTABLE_HOPS (0 restricts the
// mutable region to the root cell alone).
//
// The underlying traversal alternates one cell-hop and one segment-hop
// through the bipartite cell/segment adjacency graph, so a "hop" in the
// spec's sense is two edges in the graph walked here.
func BuildSection(rootNodeID mesh.CellID, segments []*mesh.Segment, es *mesh.EdgeSet, mutableHops int) (*UnravelSection, error) {
	if mutableHops < 0 {
		return nil, ErrInvalidMutableHops
	}
	if _, ok := es.NodeToSegmentIDs[rootNodeID]; !ok {
		return nil, ErrRootNotFound
	}

	g, nodeSet := buildBipartiteGraph(es)

	maxGraphDepth := 2 * (mutableHops + 1)
	res, err := bfs.BFS(g, string(rootNodeID), bfs.WithMaxDepth(maxGraphDepth))
	if err != nil {
		return nil, fmt.Errorf("section: traversal from %q: %w", rootNodeID, err)
	}

	allNodeIDs, mutableNodeIDs := splitByHop(res, nodeSet, mutableHops)
	immutableNodeIDs := setDifference(allNodeIDs, mutableNodeIDs)
	mutableSegmentIDs := unionSegmentsOf(mutableNodeIDs, es)

	sec := &UnravelSection{
		RootNodeID:             rootNodeID,
		MutableHops:            mutableHops,
		AllNodeIDs:             allNodeIDs,
		MutableNodeIDs:         mutableNodeIDs,
		ImmutableNodeIDs:       immutableNodeIDs,
		MutableSegmentIDs:      mutableSegmentIDs,
		SegmentPoints:          make(map[SegmentPointID]*SegmentPoint),
		SegmentPointsInNode:    make(map[mesh.CellID][]SegmentPointID),
		SegmentPointsInSegment: make(map[mesh.SegmentID][]SegmentPointID),
		SegmentPairsInNode:     make(map[mesh.CellID][][2]SegmentPointID),
		mutableSegmentSet:      toSegmentSet(mutableSegmentIDs),
	}

	collectSegmentPoints(sec, segments, es)
	computeDirectConnections(sec)
	computeSegmentPairsInNode(sec)

	return sec, nil
}

func buildBipartiteGraph(es *mesh.EdgeSet) (*core.Graph, map[string]struct{}) {
	g := core.NewGraph()
	nodeSet := make(map[string]struct{}, len(es.NodeToSegmentIDs))

	for nodeID, segIDs := range es.NodeToSegmentIDs {
		_ = g.AddVertex(string(nodeID))
		nodeSet[string(nodeID)] = struct{}{}
		for _, segID := range segIDs {
			_ = g.AddVertex(string(segID))
			_ = g.AddEdge(string(nodeID), string(segID))
		}
	}

	return g, nodeSet
}

func splitByHop(res *bfs.BFSResult, nodeSet map[string]struct{}, mutableHops int) (all, mutable []mesh.CellID) {
	for id, depth := range res.Depth {
		if _, ok := nodeSet[id]; !ok {
			continue // a segment vertex, not a cell
		}
		if depth%2 != 0 {
			continue // unreachable for a cell vertex, defensive only
		}
		hop := depth / 2
		if hop > mutableHops+1 {
			continue
		}
		all = append(all, mesh.CellID(id))
		if hop <= mutableHops {
			mutable = append(mutable, mesh.CellID(id))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	sort.Slice(mutable, func(i, j int) bool { return mutable[i] < mutable[j] })

	return all, mutable
}

func setDifference(all, mutable []mesh.CellID) []mesh.CellID {
	mutableSet := make(map[mesh.CellID]struct{}, len(mutable))
	for _, id := range mutable {
		mutableSet[id] = struct{}{}
	}

	var out []mesh.CellID
	for _, id := range all {
		if _, ok := mutableSet[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}

func unionSegmentsOf(nodeIDs []mesh.CellID, es *mesh.EdgeSet) []mesh.SegmentID {
	seen := make(map[mesh.SegmentID]struct{})
	var out []mesh.SegmentID
	for _, nodeID := range nodeIDs {
		for _, segID := range es.NodeToSegmentIDs[nodeID] {
			if _, ok := seen[segID]; ok {
				continue
			}
			seen[segID] = struct{}{}
			out = append(out, segID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func toSegmentSet(ids []mesh.SegmentID) map[mesh.SegmentID]struct{} {
	set := make(map[mesh.SegmentID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// collectSegmentPoints materializes a SegmentPoint per assigned point on
// every segment incident to a cell in the section, indexed by node and by
// segment.
func collectSegmentPoints(sec *UnravelSection, segments []*mesh.Segment, es *mesh.EdgeSet) {
	segByID := make(map[mesh.SegmentID]*mesh.Segment, len(segments))
	for _, s := range segments {
		segByID[s.ID] = s
	}

	included := make(map[mesh.SegmentID]struct{})
	for _, nodeID := range sec.AllNodeIDs {
		for _, segID := range es.NodeToSegmentIDs[nodeID] {
			included[segID] = struct{}{}
		}
	}

	segIDs := make([]mesh.SegmentID, 0, len(included))
	for id := range included {
		segIDs = append(segIDs, id)
	}
	sort.Slice(segIDs, func(i, j int) bool { return segIDs[i] < segIDs[j] })

	ids := meshid.NewGenerator("SP")
	for _, segID := range segIDs {
		seg, ok := segByID[segID]
		if !ok {
			continue
		}
		for _, ap := range seg.AssignedPoints {
			sp := &SegmentPoint{
				ID:                  SegmentPointID(ids.Next()),
				SegmentID:           segID,
				CapacityMeshNodeIDs: seg.CapacityMeshNodeIDs,
				X:                   ap.X,
				Y:                   ap.Y,
				Z:                   ap.Z,
				ConnectionName:      ap.ConnectionName,
			}
			sec.SegmentPoints[sp.ID] = sp
			sec.SegmentPointsInSegment[segID] = append(sec.SegmentPointsInSegment[segID], sp.ID)
			for _, nodeID := range seg.CapacityMeshNodeIDs {
				sec.SegmentPointsInNode[nodeID] = append(sec.SegmentPointsInNode[nodeID], sp.ID)
			}
		}
	}
}

// computeDirectConnections fills DirectlyConnectedSegmentPointIDs for every
// point: the symmetric relation over same-net points on different segments
// sharing an incident cell (spec.md §4.3 step 4).
func computeDirectConnections(sec *UnravelSection) {
	ids := sortedSegmentPointIDs(sec)

	for i := 0; i < len(ids); i++ {
		a := sec.SegmentPoints[ids[i]]
		for j := i + 1; j < len(ids); j++ {
			b := sec.SegmentPoints[ids[j]]
			if a.SegmentID == b.SegmentID || a.ConnectionName != b.ConnectionName {
				continue
			}
			if !sharesIncidentCell(a, b) {
				continue
			}
			a.DirectlyConnectedSegmentPointIDs = append(a.DirectlyConnectedSegmentPointIDs, b.ID)
			b.DirectlyConnectedSegmentPointIDs = append(b.DirectlyConnectedSegmentPointIDs, a.ID)
		}
	}
}

func sharesIncidentCell(a, b *SegmentPoint) bool {
	for _, n := range a.CapacityMeshNodeIDs {
		for _, m := range b.CapacityMeshNodeIDs {
			if n == m {
				return true
			}
		}
	}

	return false
}

func sortedSegmentPointIDs(sec *UnravelSection) []SegmentPointID {
	ids := make([]SegmentPointID, 0, len(sec.SegmentPoints))
	for id := range sec.SegmentPoints {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// computeSegmentPairsInNode builds, per cell, the deduplicated set of
// directly-connected point pairs both incident to that cell (spec.md §4.3
// step 5).
func computeSegmentPairsInNode(sec *UnravelSection) {
	for nodeID, spIDs := range sec.SegmentPointsInNode {
		inNode := make(map[SegmentPointID]struct{}, len(spIDs))
		for _, id := range spIDs {
			inNode[id] = struct{}{}
		}

		seen := make(map[[2]SegmentPointID]struct{})
		for _, aID := range spIDs {
			a := sec.SegmentPoints[aID]
			for _, bID := range a.DirectlyConnectedSegmentPointIDs {
				if _, ok := inNode[bID]; !ok {
					continue
				}
				pair := orderedPair(aID, bID)
				if _, dup := seen[pair]; dup {
					continue
				}
				seen[pair] = struct{}{}
				sec.SegmentPairsInNode[nodeID] = append(sec.SegmentPairsInNode[nodeID], pair)
			}
		}

		pairs := sec.SegmentPairsInNode[nodeID]
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i][0] != pairs[j][0] {
				return pairs[i][0] < pairs[j][0]
			}

			return pairs[i][1] < pairs[j][1]
		})
	}
}

func orderedPair(a, b SegmentPointID) [2]SegmentPointID {
	if a < b {
		return [2]SegmentPointID{a, b}
	}

	return [2]SegmentPointID{b, a}
}
