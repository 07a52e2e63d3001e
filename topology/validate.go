// SPDX-License-Identifier: MIT
// Package: GeoSeg/topology
//
// validate.go — consistency checks run by New.

package topology

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// unitTolerance bounds |‖v‖−1| for shipped vertices (7 significant digits).
const unitTolerance = 1e-6

// WindingOf returns the winding of triangle (a, b, c) in the table's
// convention. The table was generated in a left-handed frame, so its CW is a
// counter-clockwise turn for s2 (positive determinant seen from outside).
func WindingOf(a, b, c r3.Vector) Winding {
	if s2.RobustSign(s2.Point{Vector: a}, s2.Point{Vector: b}, s2.Point{Vector: c}) == s2.CounterClockwise {
		return CW
	}
	return CCW
}

func validateVertices(src *Source) error {
	for i, v := range src.Vertices {
		n := v.Norm()
		if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n-1) > unitTolerance {
			return fmt.Errorf("vertex %d has norm %v: %w", i, n, ErrMalformedTopology)
		}
	}
	return nil
}

func validateFace(src *Source, f int) error {
	ids := src.Faces[f]
	for _, id := range ids {
		if id < 0 || id >= NumVertices {
			return fmt.Errorf("face %d: vertex id %d: %w", f, id, ErrMalformedTopology)
		}
	}
	if ids[0] == ids[1] || ids[1] == ids[2] || ids[0] == ids[2] {
		return fmt.Errorf("face %d: repeated vertex in %v: %w", f, ids, ErrMalformedTopology)
	}
	a, b, c := src.Vertices[ids[0]], src.Vertices[ids[1]], src.Vertices[ids[2]]
	if b.Sub(a).Cross(c.Sub(a)).Norm2() == 0 {
		return fmt.Errorf("face %d: degenerate: %w", f, ErrMalformedTopology)
	}
	if w := src.Windings[f]; w != CW && w != CCW {
		return fmt.Errorf("face %d: winding %d: %w", f, w, ErrMalformedTopology)
	}
	if got := WindingOf(a, b, c); got != src.Windings[f] {
		return fmt.Errorf("face %d: recorded %s, geometry %s: %w", f, src.Windings[f], got, ErrMalformedTopology)
	}
	return nil
}

// position returns the corner position of vertex id in face, or -1.
func position(face [3]int, id int) int {
	for i, v := range face {
		if v == id {
			return i
		}
	}
	return -1
}

// deriveRecord checks the row (f, e) against the vertex ids and derives the
// neighbor's edge label and the edge map.
func deriveRecord(src *Source, f int, e Edge) (NeighborRecord, error) {
	link := src.Links[f][e]
	if link.Edge != e {
		return NeighborRecord{}, fmt.Errorf("face %d slot %s: row labelled %s: %w", f, e, link.Edge, ErrMalformedTopology)
	}
	g := link.Face
	if g < 0 || g >= NumFaces || g == f {
		return NeighborRecord{}, fmt.Errorf("face %d edge %s: neighbor %d: %w", f, e, g, ErrMalformedTopology)
	}

	face, other := src.Faces[f], src.Faces[g]
	s, t := e.Endpoints()
	ps, pt := position(other, face[s]), position(other, face[t])
	if ps < 0 || pt < 0 || position(other, face[e.Opposite()]) >= 0 {
		return NeighborRecord{}, fmt.Errorf("face %d edge %s: neighbor %d does not share exactly that edge: %w",
			f, e, g, ErrMalformedTopology)
	}
	ge := EdgeOpposite(3 - ps - pt)

	// The neighbor's origin is either one of our corners on the shared edge
	// or its own apex, which mirrors our corner across e.
	want := primedOrigin(e)
	if p := position(face, other[0]); p >= 0 {
		want = Origin(p)
	}
	if link.Origin != want {
		return NeighborRecord{}, fmt.Errorf("face %d edge %s: origin %s, geometry %s: %w",
			f, e, link.Origin, want, ErrMalformedTopology)
	}
	if link.Winding != src.Windings[g] {
		return NeighborRecord{}, fmt.Errorf("face %d edge %s: neighbor winding %s, face %d is %s: %w",
			f, e, link.Winding, g, src.Windings[g], ErrMalformedTopology)
	}

	m := Reverse
	if gs, _ := ge.Endpoints(); other[gs] == face[s] {
		m = Identity
	}

	return NeighborRecord{Face: g, Edge: ge, Origin: link.Origin, Winding: link.Winding, Map: m}, nil
}

// validateBackReferences checks that crossing any edge and crossing back
// lands on the starting face, edge and frame.
func validateBackReferences(t *Table) error {
	for f := 0; f < NumFaces; f++ {
		for _, e := range Edges {
			r := t.neighbors[f][e]
			back := t.neighbors[r.Face][r.Edge]
			if back.Face != f || back.Edge != e {
				return fmt.Errorf("face %d edge %s → face %d edge %s → face %d edge %s: %w",
					f, e, r.Face, r.Edge, back.Face, back.Edge, ErrMalformedTopology)
			}
			if back.Map.Compose(r.Map) != Identity {
				return fmt.Errorf("face %d edge %s: maps %s/%s do not cancel: %w",
					f, e, r.Map, back.Map, ErrMalformedTopology)
			}
		}
	}
	return nil
}

// validateEuler counts distinct edges, checks every edge is shared by exactly
// two faces and that V − E + F = 2.
func validateEuler(src *Source) (int, error) {
	type pair struct{ u, v int }
	uses := make(map[pair]int, NumEdges)
	used := make(map[int]struct{}, NumVertices)
	for _, face := range src.Faces {
		for _, e := range Edges {
			s, t := e.Endpoints()
			u, v := face[s], face[t]
			if u > v {
				u, v = v, u
			}
			uses[pair{u, v}]++
		}
		for _, id := range face {
			used[id] = struct{}{}
		}
	}
	for p, n := range uses {
		if n != 2 {
			return 0, fmt.Errorf("edge %d-%d used by %d faces: %w", p.u, p.v, n, ErrMalformedTopology)
		}
	}
	if chi := len(used) - len(uses) + NumFaces; chi != 2 {
		return 0, fmt.Errorf("euler characteristic %d: %w", chi, ErrMalformedTopology)
	}
	return len(uses), nil
}
