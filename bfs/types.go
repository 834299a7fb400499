package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS.
var (
	// ErrGraphNil indicates BFS was called with a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates the requested start vertex is absent
	// from the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrPathNotFound indicates PathTo was asked for a destination BFS never
	// reached.
	ErrPathNotFound = errors.New("bfs: no path to destination")
)

// Option configures a BFS walk.
type Option func(*BFSOptions)

// BFSOptions holds a walk's configuration.
type BFSOptions struct {
	// Ctx is checked between dequeues; a cancelled context stops the walk
	// early and BFS returns ctx.Err().
	Ctx context.Context

	// MaxDepth bounds how many edges the walk follows from the root.
	// A negative value (the default) means unbounded.
	MaxDepth int
}

// DefaultOptions returns the zero-value walk configuration: no depth bound,
// context.Background().
func DefaultOptions() *BFSOptions {
	return &BFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context BFS polls for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		o.Ctx = ctx
	}
}

// WithMaxDepth bounds the walk to vertices within depth edges of the root.
func WithMaxDepth(depth int) Option {
	return func(o *BFSOptions) {
		o.MaxDepth = depth
	}
}

// BFSResult is the outcome of a walk: visit order, per-vertex depth from the
// root, and per-vertex parent pointers, all keyed by vertex ID.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the root-to-dest path by following Parent pointers
// backward from dest. Returns ErrPathNotFound if dest was never visited.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, ErrPathNotFound
	}

	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		parent, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
