package cell

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/gasbank/GeoSeg/topology"
)

// Triangle is a cell realized on the unit sphere.
type Triangle struct {
	Corners [3]r3.Vector
	Winding topology.Winding
}

// Node pairs a cell address with its triangle.
type Node struct {
	Cell     Cell
	Triangle Triangle
}

// Midpoint returns the great-circle midpoint of a and b: their Euclidean
// mean pushed back onto the unit sphere. The result is symmetric in a and b
// bit for bit.
func Midpoint(a, b r3.Vector) r3.Vector {
	return a.Add(b).Normalize()
}

// quadrisect returns the corners of child s of the triangle p. It is the
// only place child corners are computed; Corners and Subdivide both go
// through it.
func quadrisect(p [3]r3.Vector, s Selector) [3]r3.Vector {
	if s == Center {
		return [3]r3.Vector{Midpoint(p[1], p[2]), Midpoint(p[0], p[2]), Midpoint(p[0], p[1])}
	}
	i := s.Corner()
	var q [3]r3.Vector
	for j := 0; j < 3; j++ {
		if j == i {
			q[j] = p[i]
		} else {
			q[j] = Midpoint(p[i], p[j])
		}
	}
	return q
}

// Subdivide splits t into its four children, indexed by Selector.
// All children keep t's winding.
func Subdivide(t Triangle) [4]Triangle {
	var out [4]Triangle
	for _, s := range Selectors {
		out[s] = Triangle{Corners: quadrisect(t.Corners, s), Winding: t.Winding}
	}
	return out
}

// Corners returns the three corners of c in position order. It walks the
// path from the base face without materializing intermediate cells.
//
// Complexity: O(Depth).
func (c Cell) Corners() [3]r3.Vector {
	p, _ := topology.Default().Corners(int(c.face))
	for k := 1; k <= int(c.depth); k++ {
		p = quadrisect(p, c.Selector(k))
	}
	return p
}

// Triangle returns c realized on the sphere.
func (c Cell) Triangle() Triangle {
	return Triangle{Corners: c.Corners(), Winding: c.Winding()}
}

// Centroid returns the normalized centroid of c.
func (c Cell) Centroid() r3.Vector {
	p := c.Corners()
	return p[0].Add(p[1]).Add(p[2]).Normalize()
}

// Expand quadrisects c, returning the four child addresses together with
// their triangles in selector order.
func Expand(c Cell) ([4]Node, error) {
	var out [4]Node
	kids, err := c.Children()
	if err != nil {
		return out, fmt.Errorf("%s: %w", methodExpand, err)
	}
	tris := Subdivide(c.Triangle())
	for _, s := range Selectors {
		out[s] = Node{Cell: kids[s], Triangle: tris[s]}
	}
	return out, nil
}
