package cell

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"

	"github.com/gasbank/GeoSeg/topology"
)

// ContainsPoint reports whether the direction p lies inside t or on its
// boundary. Each edge is tested with s2's exact orientation predicate.
func (t Triangle) ContainsPoint(p r3.Vector) bool {
	// Table CW is a positive determinant, i.e. s2 counter-clockwise.
	inside := s2.CounterClockwise
	if t.Winding == topology.CCW {
		inside = s2.Clockwise
	}
	a := s2.Point{Vector: t.Corners[0]}
	b := s2.Point{Vector: t.Corners[1]}
	c := s2.Point{Vector: t.Corners[2]}
	x := s2.Point{Vector: p}
	return s2.RobustSign(a, b, x) != -inside &&
		s2.RobustSign(b, c, x) != -inside &&
		s2.RobustSign(c, a, x) != -inside
}

// centroid returns the unnormalized centroid direction of t.
func (t Triangle) centroid() r3.Vector {
	return t.Corners[0].Add(t.Corners[1]).Add(t.Corners[2])
}

// ContainsPoint reports whether the direction p lies inside c or on its
// boundary.
func (c Cell) ContainsPoint(p r3.Vector) bool {
	return c.Triangle().ContainsPoint(p)
}

// Locate returns the cell at depth containing the direction p (p need not be
// unit length). Points on a shared edge or corner go to the first candidate
// in face/selector order.
//
// Returns ErrInvalidIndex for a depth outside [0, MaxDepth] or a zero or
// non-finite p.
//
// Complexity: O(F + depth).
func Locate(p r3.Vector, depth int) (Cell, error) {
	if depth < 0 || depth > MaxDepth {
		return Cell{}, fmt.Errorf("%s: depth %d: %w", methodLocate, depth, topology.ErrInvalidIndex)
	}
	n := p.Norm2()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Cell{}, fmt.Errorf("%s: point %v: %w", methodLocate, p, topology.ErrInvalidIndex)
	}
	p = p.Normalize()

	var roots [topology.NumFaces]Triangle
	c, found := Cell{}, false
	for f := 0; f < topology.NumFaces; f++ {
		root := Cell{face: uint8(f)}
		roots[f] = root.Triangle()
		if roots[f].ContainsPoint(p) {
			c, found = root, true
			break
		}
	}
	if !found {
		// Only reachable through rounding at a seam; take the closest face.
		c.face = uint8(closest(p, roots[:]))
	}

	tri := roots[c.face]
	for int(c.depth) < depth {
		kids := Subdivide(tri)
		pick := -1
		for _, s := range Selectors {
			if kids[s].ContainsPoint(p) {
				pick = int(s)
				break
			}
		}
		if pick < 0 {
			pick = closest(p, kids[:])
		}
		c = c.child(Selector(pick))
		tri = kids[pick]
	}
	return c, nil
}

// closest returns the index of the triangle whose centroid is nearest to p.
func closest(p r3.Vector, tris []Triangle) int {
	best, bestDot := 0, math.Inf(-1)
	for i, t := range tris {
		if d := p.Dot(t.centroid().Normalize()); d > bestDot {
			best, bestDot = i, d
		}
	}
	return best
}
