package bfs

import (
	"github.com/nodemesh/router/core"
)

// queueItem is one pending vertex visit: its ID, its depth from the root,
// and the vertex it was reached from (empty for the root itself).
type queueItem struct {
	id     string
	depth  int
	parent string
}

// BFS walks g breadth-first from startID, honoring opts, and returns the
// visit order, per-vertex depth, and per-vertex parent pointers.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	res := &BFSResult{
		Order:  make([]string, 0),
		Depth:  make(map[string]int),
		Parent: make(map[string]string),
	}

	queue := []queueItem{{id: startID, depth: 0}}
	res.Depth[startID] = 0

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if item.parent != "" {
			res.Parent[item.id] = item.parent
		}

		if err := o.Ctx.Err(); err != nil {
			return res, err
		}

		if o.MaxDepth >= 0 && item.depth >= o.MaxDepth {
			continue
		}

		nbrs, err := g.NeighborIDs(item.id)
		if err != nil {
			return res, err
		}

		for _, nbr := range nbrs {
			if _, visited := res.Depth[nbr]; visited {
				continue
			}
			res.Depth[nbr] = item.depth + 1
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1, parent: item.id})
		}
	}

	return res, nil
}
