package mesh

import (
	"context"
	"fmt"

	"github.com/nodemesh/router/geom"
	"github.com/nodemesh/router/meshid"
	"github.com/nodemesh/router/routejson"
)

// Builder performs the stepwise quad-tree construction described in
// spec.md §4.2. It holds a worklist of unfinished cells and a list of
// finished (retained, leaf) cells. Call Step repeatedly (or Run for a
// convenience loop) until construction is done.
type Builder struct {
	cfg       Config
	obstacles []preparedObstacle
	targets   []target
	ids       *meshid.Generator

	unfinished []*Cell
	finished   []*Cell
	warnings   []string
}

// NewBuilder validates input and cfg, seeds the root cell (the full board
// bounds, availableZ={top,bottom}, depth=0), and returns a Builder ready
// for stepping.
func NewBuilder(input *routejson.SimpleRouteJson, cfg Config) (*Builder, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Bounds.MaxX <= input.Bounds.MinX || input.Bounds.MaxY <= input.Bounds.MinY {
		return nil, ErrDegenerateBounds
	}
	cfg = cfg.resolved()
	if cfg.MaxDepth < 1 {
		return nil, ErrInvalidMaxDepth
	}

	obstacles, err := prepareObstacles(input)
	if err != nil {
		return nil, err
	}
	targets, err := resolveTargets(input)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:       cfg,
		obstacles: obstacles,
		targets:   targets,
		ids:       meshid.NewGenerator("C"),
	}

	root := &Cell{
		Rect:       geom.FromBounds(input.Bounds.MinX, input.Bounds.MinY, input.Bounds.MaxX, input.Bounds.MaxY),
		Depth:      0,
		AvailableZ: geom.Both(),
	}
	b.tagCell(root)
	root.ID = CellID(b.ids.Next())
	b.unfinished = append(b.unfinished, root)

	return b, nil
}

// Step performs one unit of work: it pops the head of the worklist and
// produces its children, finalizing or re-queuing each as spec.md §4.2
// dictates. It returns done=true once the worklist is empty.
// Complexity: O(1) amortized obstacle/target lookups are O(|obstacles| +
// |targets|) per generated child.
func (b *Builder) Step() (done bool, err error) {
	if len(b.unfinished) == 0 {
		return true, nil
	}

	parent := b.unfinished[0]
	b.unfinished = b.unfinished[1:]
	b.subdivide(parent)

	return len(b.unfinished) == 0, nil
}

// Run loops Step until the worklist is empty or ctx is cancelled. The
// context is only checked between steps (spec.md §5: suspension points are
// exactly at the step boundary).
func (b *Builder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		done, err := b.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Finished returns the retained leaf cells built so far.
func (b *Builder) Finished() []*Cell { return b.finished }

// Warnings returns non-fatal construction notices, currently just mesh
// exhaustion events (spec.md §7: max depth reached while a cell still
// contains both a target and an obstacle — finalized as-is, no retry).
// Only cells the obstacle covers partly are reported; a target cell lying
// completely inside an obstacle is finalized without a warning.
func (b *Builder) Warnings() []string { return b.warnings }

// subdivide generates P's four quadrant children and dispositions each one
// per spec.md §4.2 steps 1-3.
func (b *Builder) subdivide(parent *Cell) {
	qw := parent.Rect.Width / 2
	qh := parent.Rect.Height / 2
	cx := parent.Rect.Center.X
	cy := parent.Rect.Center.Y

	offsets := [4][2]float64{
		{-qw / 2, -qh / 2},
		{qw / 2, -qh / 2},
		{-qw / 2, qh / 2},
		{qw / 2, qh / 2},
	}

	for _, off := range offsets {
		child := &Cell{
			Rect:       geom.Rect{Center: geom.Point{X: cx + off[0], Y: cy + off[1]}, Width: qw, Height: qh},
			Depth:      parent.Depth + 1,
			Parent:     parent.ID,
			AvailableZ: geom.Both(),
		}
		b.tagCell(child)

		// If fully blocked on both layers but a target was found, shrink to
		// the target's own layer before deciding retention (spec.md §4.2.2).
		if child.CompletelyInsideObstacle && child.ContainsTarget {
			child.AvailableZ = geom.Single(child.TargetZ)
		}

		shouldBeInGraph := !child.CompletelyInsideObstacle || child.ContainsTarget
		if !shouldBeInGraph {
			if len(child.AvailableZ) > 1 {
				for _, zc := range b.zSubdivide(child) {
					b.finalize(zc)
				}
			}

			continue
		}

		b.disposeRetained(child)
	}
}

// zSubdivide emits one single-layer sibling per currently-available layer
// of c, filtered to those that should remain in the graph (spec.md §4.2
// "Z-subdivision"/getZSubdivisionChildNodes).
func (b *Builder) zSubdivide(c *Cell) []*Cell {
	out := make([]*Cell, 0, len(c.AvailableZ))
	for _, z := range c.AvailableZ {
		zc := &Cell{
			Rect:       c.Rect,
			Depth:      c.Depth,
			Parent:     c.Parent,
			AvailableZ: geom.Single(z),
		}
		b.tagCell(zc)

		if !zc.CompletelyInsideObstacle || zc.ContainsTarget {
			out = append(out, zc)
		}
	}

	return out
}

// disposeRetained implements spec.md §4.2 step 3 for a child already known
// to belong in the graph.
func (b *Builder) disposeRetained(child *Cell) {
	atMaxDepth := child.Depth >= b.cfg.MaxDepth
	if atMaxDepth && child.ContainsTarget && child.ContainsObstacle && !child.CompletelyInsideObstacle {
		b.warnings = append(b.warnings, fmt.Sprintf(
			"mesh: exhaustion at depth %d: cell still contains both target %q and an obstacle",
			child.Depth, child.TargetConnectionName))
	}

	shouldXYSubdivide := !atMaxDepth && (child.ContainsTarget ||
		(child.ContainsObstacle && !child.CompletelyInsideObstacle) ||
		len(child.AvailableZ) == 1)

	if shouldXYSubdivide {
		child.ID = CellID(b.ids.Next())
		b.unfinished = append(b.unfinished, child)

		return
	}

	switch {
	case !child.ContainsObstacle:
		b.finalize(child)
	case child.ContainsTarget:
		b.finalize(child)
	case len(child.AvailableZ) > 1:
		for _, zc := range b.zSubdivide(child) {
			b.finalize(zc)
		}
	default:
		// Single-layer, obstacle-bearing, depth-exhausted leaf: finalize as-is.
		b.finalize(child)
	}
}

func (b *Builder) finalize(c *Cell) {
	if c.ID == "" {
		c.ID = CellID(b.ids.Next())
	}
	b.finished = append(b.finished, c)
}

// tagCell computes and stores obstacle/target flags for c from its current
// Rect and AvailableZ.
func (b *Builder) tagCell(c *Cell) {
	info := resolveObstacleInfo(c.Rect, c.AvailableZ, b.obstacles)
	c.ContainsObstacle = info.containsObstacle
	c.CompletelyInsideObstacle = info.completelyInsideObstacle

	if t, ok := b.findTarget(c.Rect); ok {
		c.ContainsTarget = true
		c.TargetConnectionName = t.ConnectionName
		c.TargetZ = t.Z
	}
}

// findTarget returns the first (in input order) target whose point lies
// within rect, per spec.md §4.2 "Target detection".
func (b *Builder) findTarget(rect geom.Rect) (target, bool) {
	for _, t := range b.targets {
		if geom.PointInRect(t.Point, rect) {
			return t, true
		}
	}

	return target{}, false
}
