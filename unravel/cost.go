package unravel

import (
	"math"

	"github.com/nodemesh/router/mesh"
)

// Cost-function constants from spec.md §4.4. Fitted empirical factors:
// treat as a fixed, documented tuple and do not turn into configuration
// without regressing against the trivial-crossing scenario.
const (
	sameLayerCrossingWeight = 0.82
	transitionCrossingWeight = 0.41
	transitionViaWeight      = 0.2
	capacityExponent         = 1.1

	probabilityEpsilon = 1e-9
)

type cellIssueCounts struct {
	transitionVias      int
	sameLayerCrossings  int
	transitionCrossings int
}

// computeG sums the per-cell probabilistic cost over every cell carrying
// at least one issue. Cells with zero issues contribute zero, so
// issues == nil implies g == 0 (spec.md §8 property 6).
func computeG(cells map[mesh.CellID]*mesh.Cell, minTraceWidth float64, issues []Issue) (float64, error) {
	counts := make(map[mesh.CellID]*cellIssueCounts)
	for _, is := range issues {
		c, ok := counts[is.NodeID]
		if !ok {
			c = &cellIssueCounts{}
			counts[is.NodeID] = c
		}
		switch is.Kind {
		case IssueTransitionVia:
			c.transitionVias++
		case IssueSameLayerCrossing:
			c.sameLayerCrossings++
		case IssueSingleTransitionCrossing, IssueDoubleTransitionCrossing:
			c.transitionCrossings++
		}
	}

	var g float64
	for nodeID, c := range counts {
		cell, ok := cells[nodeID]
		if !ok {
			return 0, ErrUnknownCell
		}

		estVias := sameLayerCrossingWeight*float64(c.sameLayerCrossings) +
			transitionCrossingWeight*float64(c.transitionCrossings) +
			transitionViaWeight*float64(c.transitionVias)
		estUsedCapacity := math.Pow(estVias/2, capacityExponent)
		estPf := estUsedCapacity / tunedTotalCapacity(cell, minTraceWidth)
		g += logProbability(estPf)
	}

	return g, nil
}

// tunedTotalCapacity is a deterministic function of a cell's geometry: wider
// cells and cells with more available layers can host more crossing traces
// before congestion sets in. Implementations must reuse the same function
// across a search run; the Solver recomputes it on every computeG call
// rather than caching it per cell.
func tunedTotalCapacity(cell *mesh.Cell, minTraceWidth float64) float64 {
	if minTraceWidth <= 0 {
		minTraceWidth = 1
	}

	tracesAcrossWidth := cell.Width() / minTraceWidth
	layers := float64(len(cell.AvailableZ))

	return math.Max(probabilityEpsilon, tracesAcrossWidth*layers)
}

// logProbability maps an estimated failure probability to a smooth,
// monotonically increasing cost. It is the negative log of the estimated
// success probability (1-estPf), so a congestion-free cell (estPf == 0)
// contributes exactly zero and cost rises steeply as estPf approaches 1,
// capped at -log(probabilityEpsilon) (about 20.7) once 1-estPf falls below
// probabilityEpsilon. Outputs are clipped at zero to absorb floating error
// when estPf is at or near zero.
func logProbability(estPf float64) float64 {
	success := 1 - estPf
	if success < probabilityEpsilon {
		success = probabilityEpsilon
	}

	v := -math.Log(success)
	if v < 0 {
		v = 0
	}

	return v
}
