// SPDX-License-Identifier: MIT
// Package: GeoSeg/mesh
//
// types.go — options, sentinel errors and result types.

package mesh

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/gasbank/GeoSeg/cell"
)

// MaxMeshDepth bounds New: 20·4^8 ≈ 1.3M cells.
const MaxMeshDepth = 8

// Sentinel errors for mesh operations.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mesh: invalid option supplied")
	// ErrCellIndex indicates a cell index or cell outside the mesh.
	ErrCellIndex = errors.New("mesh: cell index out of range")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("mesh: component index out of range")
	// ErrNoPath indicates no path exists between the specified cells.
	ErrNoPath = errors.New("mesh: no path between specified cells")
	// ErrAsymmetric indicates broken adjacency found by Validate.
	ErrAsymmetric = errors.New("mesh: adjacency is not symmetric")
)

// Connectivity selects which cells count as adjacent.
type Connectivity int

const (
	// ConnEdge links cells sharing an edge: 3 neighbors per cell.
	ConnEdge Connectivity = iota
	// ConnVertex links cells sharing at least one corner: up to 12 neighbors.
	ConnVertex
)

// String returns "edge" or "vertex".
func (c Connectivity) String() string {
	switch c {
	case ConnEdge:
		return "edge"
	case ConnVertex:
		return "vertex"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Option configures New and Walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// call that received it runs.
type Option func(*Options)

// Options holds the parameters of New and Walk. Each call reads only the
// fields it uses.
type Options struct {
	// Ctx allows cancellation of New and Walk.
	Ctx context.Context

	// Workers is the number of goroutines resolving neighbors in New.
	Workers int

	// Conn chooses edge or vertex adjacency for the built mesh.
	Conn Connectivity

	// MaxHops, if > 0, stops Walk beyond this distance from the start.
	MaxHops int

	// OnVisit is called by Walk for each cell in visit order. Returning an
	// error aborts the walk.
	OnVisit func(c cell.Cell, hops int) error

	// FilterNeighbor can skip a step of Walk by returning false.
	FilterNeighbor func(from, to cell.Cell) bool

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - GOMAXPROCS workers
//   - edge connectivity
//   - no hop limit, no-op hooks, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Workers:        runtime.GOMAXPROCS(0),
		Conn:           ConnEdge,
		OnVisit:        func(cell.Cell, int) error { return nil },
		FilterNeighbor: func(_, _ cell.Cell) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the size of New's worker pool. n < 1 is invalid.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithConnectivity selects edge or vertex adjacency.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != ConnEdge && c != ConnVertex {
			o.err = fmt.Errorf("%w: unknown connectivity %v", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithMaxHops limits Walk to cells at most d steps away.
//
//	d > 0: limit to d hops
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxHops(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxHops = d
	}
}

// WithOnVisit registers a callback run on every visited cell.
func WithOnVisit(fn func(c cell.Cell, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(from, to cell.Cell) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Stats counts the distinct vertices, edges and faces of a mesh, with
// corners merged by exact equality.
type Stats struct {
	Vertices, Edges, Faces int
}

// Euler returns V − E + F, which is 2 for any closed subdivision of the
// sphere.
func (s Stats) Euler() int { return s.Vertices - s.Edges + s.Faces }
