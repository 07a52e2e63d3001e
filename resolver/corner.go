// SPDX-License-Identifier: MIT
// Package: GeoSeg/resolver
//
// corner.go — walks around a shared corner by repeated edge crossings.

package resolver

import (
	"fmt"
	"slices"

	"github.com/gasbank/GeoSeg/cell"
	"github.com/gasbank/GeoSeg/topology"
)

// maxValence bounds the number of cells meeting at one corner: 5 at the
// twelve base vertices, 6 everywhere else.
const maxValence = 6

// AroundCorner returns the cells sharing corner pos (0..2) of c, starting
// with c itself and turning around the corner one edge at a time.
//
// Returns ErrInvalidIndex for pos outside 0..2, ErrMalformedTopology if the
// walk does not close within maxValence steps.
func AroundCorner(c cell.Cell, pos int) ([]cell.Cell, error) {
	if pos < 0 || pos > 2 {
		return nil, fmt.Errorf("%s: %v corner %d: %w", methodAroundCorner, c, pos, topology.ErrInvalidIndex)
	}

	tb := topology.Default()
	out := make([]cell.Cell, 0, maxValence)
	cur, q := c, pos
	e := topology.EdgeOpposite((pos + 1) % 3)
	for i := 0; i < maxValence; i++ {
		out = append(out, cur)

		x := cross(tb, cur, e)
		start, _ := e.Endpoints()
		us, ue := x.Edge.Endpoints()
		if (q == start) != (x.Map == topology.Reverse) {
			q = us
		} else {
			q = ue
		}
		// Leave through the other edge touching the corner.
		cur, e = x.Cell, topology.Edge(3-q-int(x.Edge))

		if cur == c {
			if q != pos {
				break
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("%s: %v corner %d: %w", methodAroundCorner, c, pos, topology.ErrMalformedTopology)
}

// VertexNeighbors returns every cell other than c sharing at least one corner
// with c, in Compare order. That is 12 cells, or fewer when c touches a base
// vertex (9 for a root cell).
func VertexNeighbors(c cell.Cell) ([]cell.Cell, error) {
	out := make([]cell.Cell, 0, 12)
	for pos := 0; pos < 3; pos++ {
		ring, err := AroundCorner(c, pos)
		if err != nil {
			return nil, err
		}
		for _, n := range ring[1:] {
			if !slices.Contains(out, n) {
				out = append(out, n)
			}
		}
	}
	slices.SortFunc(out, cell.Compare)

	return out, nil
}
