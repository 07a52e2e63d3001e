// SPDX-License-Identifier: MIT
// Package: GeoSeg/mesh
//
// walk.go — breadth-first walks, paths and hop distances.

package mesh

import (
	"context"
	"errors"
	"fmt"

	"github.com/gasbank/GeoSeg/cell"
)

// errReached stops a walk once Path has seen its target.
var errReached = errors.New("mesh: target reached")

// WalkResult holds the outcome of a walk, indexed by cell index:
//   - Order: cells visited, in visit sequence.
//   - Hops: distance from the start, -1 if not reached.
//   - Parent: predecessor in the walk tree, -1 for the start and unreached cells.
type WalkResult struct {
	Order  []int
	Hops   []int
	Parent []int
}

// PathTo reconstructs the path from the start cell to dest.
func (r *WalkResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Hops) {
		return nil, fmt.Errorf("%s: %d: %w", methodPath, dest, ErrCellIndex)
	}
	if r.Hops[dest] < 0 {
		return nil, fmt.Errorf("%s: to %d: %w", methodPath, dest, ErrNoPath)
	}
	path := make([]int, r.Hops[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i, cur = i-1, r.Parent[cur] {
		path[i] = cur
	}
	return path, nil
}

// walker encapsulates mutable walk state.
type walker struct {
	m     *Mesh
	opts  Options
	ctx   context.Context
	queue []int
	res   *WalkResult
}

// Walk runs a breadth-first search over m from cell start.
//
// Returns ErrCellIndex for a bad start, ErrOptionViolation for bad options,
// the context's error on cancellation, or any error returned by OnVisit.
// Complexity: O(N·k) time, O(N) memory, k = neighbors per cell.
func (m *Mesh) Walk(start int, opts ...Option) (*WalkResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.valid(start) {
		return nil, fmt.Errorf("%s: start %d: %w", methodWalk, start, ErrCellIndex)
	}

	n := len(m.cells)
	w := &walker{
		m:     m,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &WalkResult{
			Order:  make([]int, 0, n),
			Hops:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Hops {
		w.res.Hops[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

func (w *walker) enqueue(i, hops, parent int) {
	w.res.Hops[i] = hops
	w.res.Parent[i] = parent
	w.queue = append(w.queue, i)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[head]
		hops := w.res.Hops[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(w.m.cells[u], hops); err != nil {
			return fmt.Errorf("%s: OnVisit at %v: %w", methodWalk, w.m.cells[u], err)
		}
		if w.opts.MaxHops > 0 && hops >= w.opts.MaxHops {
			continue
		}
		for _, v := range w.m.adjacent(u) {
			if w.res.Hops[v] >= 0 || !w.opts.FilterNeighbor(w.m.cells[u], w.m.cells[v]) {
				continue
			}
			w.enqueue(v, hops+1, u)
		}
	}
	return nil
}

// Path returns a shortest sequence of adjacent cells from one index to
// another, both included, moving only through cells accepted by keep
// (nil keeps every cell).
//
// Returns ErrCellIndex for bad indices and ErrNoPath if to is unreachable
// or either end is rejected by keep.
func (m *Mesh) Path(from, to int, keep func(cell.Cell) bool) ([]int, error) {
	if !m.valid(from) || !m.valid(to) {
		return nil, fmt.Errorf("%s: %d -> %d: %w", methodPath, from, to, ErrCellIndex)
	}
	if keep == nil {
		keep = func(cell.Cell) bool { return true }
	}
	if !keep(m.cells[from]) || !keep(m.cells[to]) {
		return nil, fmt.Errorf("%s: %d -> %d: %w", methodPath, from, to, ErrNoPath)
	}

	target := m.cells[to]
	res, err := m.Walk(from,
		WithFilterNeighbor(func(_, next cell.Cell) bool { return keep(next) }),
		WithOnVisit(func(c cell.Cell, _ int) error {
			if c == target {
				return errReached
			}
			return nil
		}),
	)
	if err != nil && !errors.Is(err, errReached) {
		return nil, err
	}

	return res.PathTo(to)
}

// Distance returns the number of steps between two cells.
func (m *Mesh) Distance(from, to int) (int, error) {
	p, err := m.Path(from, to, nil)
	if err != nil {
		return 0, err
	}
	return len(p) - 1, nil
}
