// SPDX-License-Identifier: MIT
// Package: GeoSeg/mesh
//
// mesh.go — enumeration and concurrent neighbor resolution.

package mesh

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/golang/geo/r3"

	"github.com/gasbank/GeoSeg/cell"
	"github.com/gasbank/GeoSeg/resolver"
	"github.com/gasbank/GeoSeg/topology"
)

const (
	methodNew      = "New"
	methodCell     = "Cell"
	methodIndex    = "Index"
	methodLocate   = "Locate"
	methodWalk     = "Walk"
	methodPath     = "Path"
	methodBridge   = "Bridge"
	methodValidate = "Validate"
)

// chunk is the number of cells a worker resolves between cancellation checks.
const chunk = 1024

// Mesh is every cell of one depth with its adjacency, indexed in id order.
// It is immutable once built and safe for concurrent reads.
type Mesh struct {
	depth int
	conn  Connectivity
	cells []cell.Cell
	ids   []cell.ID
	edge  [][3]int
	ring  [][]int // ConnVertex only
}

// New enumerates the 20·4^depth cells of the given depth and resolves their
// neighbors on a pool of workers.
//
// Returns ErrOptionViolation for a bad option, ErrInvalidIndex for a depth
// outside [0, MaxMeshDepth], or the context's error if cancelled.
// Complexity: O(N·depth) time, O(N) memory, N = 20·4^depth.
func New(depth int, opts ...Option) (*Mesh, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if depth < 0 || depth > MaxMeshDepth {
		return nil, fmt.Errorf("%s: depth %d outside [0,%d]: %w", methodNew, depth, MaxMeshDepth, topology.ErrInvalidIndex)
	}

	cells := enumerate(depth)
	m := &Mesh{
		depth: depth,
		conn:  o.Conn,
		cells: cells,
		ids:   make([]cell.ID, len(cells)),
		edge:  make([][3]int, len(cells)),
	}
	for i, c := range cells {
		m.ids[i] = c.ID()
	}
	if o.Conn == ConnVertex {
		m.ring = make([][]int, len(cells))
	}

	if err := m.resolve(o.Ctx, o.Workers); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return m, nil
}

// enumerate lists every cell of the given depth in Compare order, which at
// a fixed depth is also id order.
func enumerate(depth int) []cell.Cell {
	level := make([]cell.Cell, 0, topology.NumFaces)
	for f := 0; f < topology.NumFaces; f++ {
		c, _ := cell.Root(f)
		level = append(level, c)
	}
	for d := 0; d < depth; d++ {
		next := make([]cell.Cell, 0, 4*len(level))
		for _, c := range level {
			kids, _ := c.Children()
			next = append(next, kids[:]...)
		}
		level = next
	}
	return level
}

// resolve fills the adjacency. Worker w takes chunks w, w+workers, ... and
// checks ctx before each chunk.
func (m *Mesh) resolve(ctx context.Context, workers int) error {
	n := len(m.cells)
	workers = min(workers, (n+chunk-1)/chunk)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for lo := w * chunk; lo < n; lo += workers * chunk {
				select {
				case <-ctx.Done():
					errs[w] = ctx.Err()
					return
				default:
				}
				for i := lo; i < min(lo+chunk, n); i++ {
					if err := m.resolveCell(i); err != nil {
						errs[w] = err
						return
					}
				}
			}
		}(w)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (m *Mesh) resolveCell(i int) error {
	c := m.cells[i]
	for e, x := range resolver.Neighbors(c) {
		j, ok := m.lookup(x.Cell)
		if !ok {
			return fmt.Errorf("%v edge %s -> %v: %w", c, topology.Edge(e), x.Cell, ErrCellIndex)
		}
		m.edge[i][e] = j
	}
	if m.ring == nil {
		return nil
	}

	vn, err := resolver.VertexNeighbors(c)
	if err != nil {
		return err
	}
	r := make([]int, len(vn))
	for k, v := range vn {
		j, ok := m.lookup(v)
		if !ok {
			return fmt.Errorf("%v corner ring -> %v: %w", c, v, ErrCellIndex)
		}
		r[k] = j
	}
	m.ring[i] = r

	return nil
}

func (m *Mesh) lookup(c cell.Cell) (int, bool) {
	if c.Depth() != m.depth {
		return 0, false
	}
	return slices.BinarySearch(m.ids, c.ID())
}

func (m *Mesh) valid(i int) bool { return i >= 0 && i < len(m.cells) }

// adjacent returns the neighbors of i under the mesh's connectivity. The
// slice aliases internal storage.
func (m *Mesh) adjacent(i int) []int {
	if m.ring != nil {
		return m.ring[i]
	}
	return m.edge[i][:]
}

// Depth returns the subdivision depth of every cell in m.
func (m *Mesh) Depth() int { return m.depth }

// Len returns the number of cells.
func (m *Mesh) Len() int { return len(m.cells) }

// Connectivity returns the adjacency m was built with.
func (m *Mesh) Connectivity() Connectivity { return m.conn }

// Cell returns the cell at index i.
func (m *Mesh) Cell(i int) (cell.Cell, error) {
	if !m.valid(i) {
		return cell.Cell{}, fmt.Errorf("%s: %d: %w", methodCell, i, ErrCellIndex)
	}
	return m.cells[i], nil
}

// Index returns the index of c, or ErrCellIndex if c is not at m's depth.
// Complexity: O(log N).
func (m *Mesh) Index(c cell.Cell) (int, error) {
	i, ok := m.lookup(c)
	if !ok {
		return 0, fmt.Errorf("%s: %v: %w", methodIndex, c, ErrCellIndex)
	}
	return i, nil
}

// EdgeNeighbors returns the indices across edges O, A and B of cell i,
// regardless of the mesh's connectivity.
func (m *Mesh) EdgeNeighbors(i int) ([3]int, error) {
	if !m.valid(i) {
		return [3]int{}, fmt.Errorf("%s: %d: %w", methodCell, i, ErrCellIndex)
	}
	return m.edge[i], nil
}

// Neighbors returns a copy of the adjacency list of cell i.
func (m *Mesh) Neighbors(i int) ([]int, error) {
	if !m.valid(i) {
		return nil, fmt.Errorf("%s: %d: %w", methodCell, i, ErrCellIndex)
	}
	return slices.Clone(m.adjacent(i)), nil
}

// Corners returns the corners of cell i.
func (m *Mesh) Corners(i int) ([3]r3.Vector, error) {
	if !m.valid(i) {
		return [3]r3.Vector{}, fmt.Errorf("%s: %d: %w", methodCell, i, ErrCellIndex)
	}
	return m.cells[i].Corners(), nil
}

// Locate returns the index of the cell containing direction p.
func (m *Mesh) Locate(p r3.Vector) (int, error) {
	c, err := cell.Locate(p, m.depth)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodLocate, err)
	}
	return m.Index(c)
}
