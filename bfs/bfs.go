// Package bfs computes the shortest route through a maze.Grid with
// breadth-first search, returning the move count to the nearest
// destination together with depths, parent links and visit order.
//
// The search grows from the Start cell over walkable cells (Path and
// Destination) with 4-neighbour adjacency, and stops as soon as a
// destination is enqueued.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/theseus/maze"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   maze.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *maze.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[maze.Position]bool
	res     *BFSResult
	done    bool
}

// ShortestPath runs breadth-first search on g from its Start cell,
// applying any number of functional Options.
// Returns ErrGridNil or a wrapped maze.ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// When no destination is reachable the result carries Distance == Unreachable
// and the error is nil.
func ShortestPath(g *maze.Grid, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.FindStart()
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	n := g.Size()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[maze.Position]bool, n),
		res: &BFSResult{
			Start:    start,
			Distance: Unreachable,
			Order:    make([]maze.Position, 0, n),
			Depth:    make(map[maze.Position]int, n),
			Parent:   make(map[maze.Position]maze.Position, n),
		},
	}

	// Seed queue with the start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks p visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue. Enqueuing a destination ends the search.
func (w *walker) enqueue(p maze.Position, d int, parent *maze.Position) {
	w.visited[p] = true
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})

	if parent != nil && w.grid.IsDestination(p) {
		w.res.Target = p
		w.res.Distance = d
		w.done = true
	}
}

// loop processes the queue until empty, a destination is found, an error,
// or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.pos, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors enqueues every unseen walkable neighbour in heading
// order N, E, S, W, honouring MaxDepth and stopping at a destination.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, h := range maze.Headings {
		nbr := w.grid.Neighbor(item.pos, h)
		if !w.grid.IsWalkable(nbr) || w.visited[nbr] {
			continue
		}
		parent := item.pos
		w.enqueue(nbr, nextDepth, &parent)
		if w.done {
			return
		}
	}
}
