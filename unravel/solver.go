package unravel

import (
	"context"

	"github.com/nodemesh/router/mesh"
	"github.com/nodemesh/router/section"
)

// QueueMode selects the candidate expansion order (spec.md §4.4).
type QueueMode int

const (
	// FIFOQueueMode pops the head and pushes neighbors at the tail,
	// giving breadth-first-with-dedup behavior. This is the reference
	// default.
	FIFOQueueMode QueueMode = iota
	// PriorityQueueMode pops the lowest-F candidate, ties broken by
	// insertion order.
	PriorityQueueMode
)

// DefaultMaxIterations is the MaxIterations value meshcfg.Default uses. It
// is zero, and zero in Options disables the bound entirely, so by default
// the search runs until the frontier empties.
const DefaultMaxIterations = 0

// Options tunes Solver behavior.
type Options struct {
	// MinTraceWidth feeds tunedTotalCapacity; it should match the board's
	// minTraceWidth used to size the mesh.
	MinTraceWidth float64

	// QueueMode selects FIFO or priority-queue expansion order.
	QueueMode QueueMode

	// MaxIterations stops the search after this many Step calls that
	// popped a candidate. Zero means unbounded (spec.md §4.4 permits an
	// implementation-defined MAX_ITERATIONS).
	MaxIterations int
}

func (o Options) resolved() Options {
	if o.MinTraceWidth <= 0 {
		o.MinTraceWidth = 1
	}

	return o
}

// Solver runs the best-first search described in spec.md §4.4 over one
// UnravelSection. Call Step repeatedly (or Run for a convenience loop)
// until it reports done.
type Solver struct {
	sec   *section.UnravelSection
	cells map[mesh.CellID]*mesh.Cell
	opts  Options

	frontier        *frontier
	visitedHash     map[string]struct{}
	visitedFullHash map[string]struct{}

	original      *Candidate
	best          *Candidate
	lastProcessed *Candidate

	iterations int
}

// NewSolver builds the initial candidate (empty modifications) from sec and
// cells, and seeds the search frontier with it.
func NewSolver(sec *section.UnravelSection, cells map[mesh.CellID]*mesh.Cell, opts Options) (*Solver, error) {
	if sec == nil {
		return nil, ErrNilSection
	}
	opts = opts.resolved()

	s := &Solver{
		sec:             sec,
		cells:           cells,
		opts:            opts,
		frontier:        newFrontier(opts.QueueMode),
		visitedHash:     make(map[string]struct{}),
		visitedFullHash: make(map[string]struct{}),
	}

	initial, err := s.buildCandidate(Modifications{}, 0)
	if err != nil {
		return nil, err
	}
	s.original = initial
	s.best = initial
	s.lastProcessed = initial

	s.markVisited(initial)
	s.frontier.push(initial)

	return s, nil
}

// OriginalCandidate returns the seed candidate (empty modifications).
func (s *Solver) OriginalCandidate() *Candidate { return s.original }

// BestCandidate returns the lowest-F candidate seen so far — the solver's
// output at any point, including after termination.
func (s *Solver) BestCandidate() *Candidate { return s.best }

// LastProcessedCandidate returns the most recently expanded candidate.
func (s *Solver) LastProcessedCandidate() *Candidate { return s.lastProcessed }

// Step performs one unit of work: pop the head candidate, update the
// incumbent, and expand its neighbors. It returns done=true once the
// frontier is empty or MaxIterations is reached.
func (s *Solver) Step() (done bool, err error) {
	if s.opts.MaxIterations > 0 && s.iterations >= s.opts.MaxIterations {
		return true, nil
	}

	cand := s.frontier.pop()
	if cand == nil {
		return true, nil
	}
	s.iterations++
	s.lastProcessed = cand

	if cand.F < s.best.F {
		s.best = cand
	}

	for _, issue := range cand.Issues {
		for _, op := range generateOperations(s.sec, issue) {
			nextMods := applyOperationToPointModifications(s.sec, cand.Modifications, op)
			neighbor, buildErr := s.buildCandidate(nextMods, cand.OperationsPerformed+1)
			if buildErr != nil {
				return false, buildErr
			}
			if s.isVisited(neighbor) {
				continue
			}
			s.markVisited(neighbor)
			s.frontier.push(neighbor)
		}
	}

	return s.frontier.empty(), nil
}

// Run loops Step until the frontier empties, MaxIterations is hit, or ctx is
// cancelled.
func (s *Solver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		done, err := s.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (s *Solver) buildCandidate(mods Modifications, opsPerformed int) (*Candidate, error) {
	issues := getIssuesInSection(s.sec, mods)
	g, err := computeG(s.cells, s.opts.MinTraceWidth, issues)
	if err != nil {
		return nil, err
	}

	return &Candidate{
		Modifications:       mods,
		Issues:              issues,
		G:                   g,
		H:                   0,
		F:                   g,
		OperationsPerformed: opsPerformed,
		Hash:                candidateHash(mods),
		FullHash:            candidateFullHash(s.sec, mods),
	}, nil
}

func (s *Solver) isVisited(c *Candidate) bool {
	if _, ok := s.visitedHash[c.Hash]; ok {
		return true
	}
	_, ok := s.visitedFullHash[c.FullHash]

	return ok
}

func (s *Solver) markVisited(c *Candidate) {
	s.visitedHash[c.Hash] = struct{}{}
	s.visitedFullHash[c.FullHash] = struct{}{}
}
