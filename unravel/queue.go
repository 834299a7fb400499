package unravel

import "container/heap"

// candidateItem wraps a *Candidate with its insertion sequence so the
// priority queue can break ties by FIFO order (spec.md §5 "ties MUST break
// by insertion order").
type candidateItem struct {
	candidate *Candidate
	seq       int
}

// candidatePQ is a min-heap of *candidateItem ordered by F ascending, ties
// broken by insertion sequence.
type candidatePQ []*candidateItem

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].candidate.F != pq[j].candidate.F {
		return pq[i].candidate.F < pq[j].candidate.F
	}

	return pq[i].seq < pq[j].seq
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidateItem)) }

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// frontier is the candidate-queue abstraction shared by both expansion
// orders spec.md §4.4 permits: FIFO list-with-dedup, or a strict min-heap
// on F. Both pop the logically "next" candidate and push neighbors at
// expansion time.
type frontier struct {
	mode QueueMode
	fifo []*Candidate
	pq   candidatePQ
	next int
}

func newFrontier(mode QueueMode) *frontier {
	f := &frontier{mode: mode}
	if mode == PriorityQueueMode {
		heap.Init(&f.pq)
	}

	return f
}

func (f *frontier) push(c *Candidate) {
	switch f.mode {
	case PriorityQueueMode:
		heap.Push(&f.pq, &candidateItem{candidate: c, seq: f.next})
		f.next++
	default:
		f.fifo = append(f.fifo, c)
	}
}

func (f *frontier) pop() *Candidate {
	switch f.mode {
	case PriorityQueueMode:
		if f.pq.Len() == 0 {
			return nil
		}

		return heap.Pop(&f.pq).(*candidateItem).candidate
	default:
		if len(f.fifo) == 0 {
			return nil
		}
		c := f.fifo[0]
		f.fifo = f.fifo[1:]

		return c
	}
}

func (f *frontier) empty() bool {
	switch f.mode {
	case PriorityQueueMode:
		return f.pq.Len() == 0
	default:
		return len(f.fifo) == 0
	}
}
