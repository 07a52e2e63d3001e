// SPDX-License-Identifier: MIT
// Package: GeoSeg/mesh
//
// stats.go — topology counts and adjacency self-checks.

package mesh

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r3"
)

// Stats merges corners by exact equality and counts distinct vertices and
// edges. For a depth-d mesh: V = 10·4^d + 2, E = 30·4^d, F = 20·4^d.
// Complexity: O(N·depth) time, O(N) memory.
func (m *Mesh) Stats() Stats {
	verts := make(map[r3.Vector]struct{}, len(m.cells)/2+2)
	edges := make(map[[2]r3.Vector]struct{}, 3*len(m.cells)/2)
	for _, c := range m.cells {
		p := c.Corners()
		for k := 0; k < 3; k++ {
			verts[p[k]] = struct{}{}
			a, b := p[k], p[(k+1)%3]
			if less(b, a) {
				a, b = b, a
			}
			edges[[2]r3.Vector{a, b}] = struct{}{}
		}
	}
	return Stats{Vertices: len(verts), Edges: len(edges), Faces: len(m.cells)}
}

// Validate checks the adjacency: every cell has three distinct edge
// neighbors other than itself, each lists the cell back and shares exactly
// two corners with it. Vertex rings, when built, must be symmetric too.
// Returns ErrAsymmetric wrapped with the offending cell.
func (m *Mesh) Validate() error {
	for i, nb := range m.edge {
		if nb[0] == nb[1] || nb[1] == nb[2] || nb[0] == nb[2] || slices.Contains(nb[:], i) {
			return fmt.Errorf("%s: %v neighbors %v: %w", methodValidate, m.cells[i], nb, ErrAsymmetric)
		}
		p := m.cells[i].Corners()
		for _, j := range nb {
			if !slices.Contains(m.edge[j][:], i) {
				return fmt.Errorf("%s: %v -> %v not mirrored: %w", methodValidate, m.cells[i], m.cells[j], ErrAsymmetric)
			}
			if n := sharedCorners(p, m.cells[j].Corners()); n != 2 {
				return fmt.Errorf("%s: %v and %v share %d corners: %w", methodValidate, m.cells[i], m.cells[j], n, ErrAsymmetric)
			}
		}
	}

	for i, r := range m.ring {
		for _, j := range r {
			if j == i || !slices.Contains(m.ring[j], i) {
				return fmt.Errorf("%s: %v ring -> %v not mirrored: %w", methodValidate, m.cells[i], m.cells[j], ErrAsymmetric)
			}
		}
	}

	return nil
}

func sharedCorners(p, q [3]r3.Vector) int {
	n := 0
	for _, u := range p {
		if slices.Contains(q[:], u) {
			n++
		}
	}
	return n
}

// less orders vectors lexicographically by X, Y, Z.
func less(a, b r3.Vector) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
