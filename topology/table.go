// SPDX-License-Identifier: MIT
// Package: GeoSeg/topology
//
// table.go — immutable lookup structure over the base table.
//
// Contract:
//   • New validates a Source and derives neighbor edges and edge maps.
//   • Default returns the shipped table, built once at package init.
//   • Every query is O(1) and returns ErrInvalidIndex (wrapped) out of range.
//   • A *Table is never mutated after construction.

package topology

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Method tags used for error context.
const (
	methodNew      = "New"
	methodVertex   = "Vertex"
	methodFace     = "Face"
	methodWinding  = "Winding"
	methodNeighbor = "Neighbor"
)

// Source is the raw content of a base table. It is a plain value: arrays are
// copied on assignment, so editing a Source never affects a built Table.
type Source struct {
	Vertices [NumVertices]r3.Vector
	Faces    [NumFaces][3]int
	Windings [NumFaces]Winding
	Links    [NumFaces][3]Link
}

// BaseSource returns a copy of the shipped icosahedron data.
func BaseSource() Source {
	return Source{
		Vertices: baseVertices,
		Faces:    baseFaces,
		Windings: baseWindings,
		Links:    baseLinks,
	}
}

// Table is the validated base level of the grid.
type Table struct {
	vertices  [NumVertices]r3.Vector
	faces     [NumFaces]Face
	neighbors [NumFaces][3]NeighborRecord
	edges     int
}

var defaultTable = mustBuild(BaseSource())

func mustBuild(src Source) *Table {
	t, err := New(src)
	if err != nil {
		// The shipped table is vetted data; failing here means it was edited.
		panic(err)
	}
	return t
}

// Default returns the process-wide shipped table.
func Default() *Table { return defaultTable }

// New validates src and builds a Table from it.
//
// Returns ErrMalformedTopology (wrapped with the offending face/edge) if any
// record is inconsistent: out-of-range or repeated ids, non-unit or
// degenerate geometry, a winding flag that disagrees with the vertex
// positions, a row whose edge label is not its slot, a neighbor that does not
// share the edge, an origin variant that disagrees with the neighbor's corner
// order, a missing back-reference, or an Euler characteristic other than 2.
//
// Complexity: O(F) with F = 20.
func New(src Source) (*Table, error) {
	t := &Table{vertices: src.Vertices}

	if err := validateVertices(&src); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	for f := 0; f < NumFaces; f++ {
		if err := validateFace(&src, f); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		t.faces[f] = Face{ID: f, Vertices: src.Faces[f], Winding: src.Windings[f]}
	}
	for f := 0; f < NumFaces; f++ {
		for _, e := range Edges {
			rec, err := deriveRecord(&src, f, e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodNew, err)
			}
			t.neighbors[f][e] = rec
		}
	}
	if err := validateBackReferences(t); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	edges, err := validateEuler(&src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	t.edges = edges

	return t, nil
}

// NumVertices returns the vertex count (12).
func (t *Table) NumVertices() int { return NumVertices }

// NumFaces returns the face count (20).
func (t *Table) NumFaces() int { return NumFaces }

// NumEdges returns the number of distinct undirected edges (30).
func (t *Table) NumEdges() int { return t.edges }

// Vertex returns the unit vector of vertex id.
func (t *Table) Vertex(id int) (r3.Vector, error) {
	if id < 0 || id >= NumVertices {
		return r3.Vector{}, fmt.Errorf("%s: vertex %d: %w", methodVertex, id, ErrInvalidIndex)
	}
	return t.vertices[id], nil
}

// Face returns the face record of id.
func (t *Table) Face(id int) (Face, error) {
	if id < 0 || id >= NumFaces {
		return Face{}, fmt.Errorf("%s: face %d: %w", methodFace, id, ErrInvalidIndex)
	}
	return t.faces[id], nil
}

// Winding returns the winding flag of face id.
func (t *Table) Winding(id int) (Winding, error) {
	if id < 0 || id >= NumFaces {
		return CCW, fmt.Errorf("%s: face %d: %w", methodWinding, id, ErrInvalidIndex)
	}
	return t.faces[id].Winding, nil
}

// Neighbor returns the record of the face across edge e of face id.
func (t *Table) Neighbor(id int, e Edge) (NeighborRecord, error) {
	if id < 0 || id >= NumFaces {
		return NeighborRecord{}, fmt.Errorf("%s: face %d: %w", methodNeighbor, id, ErrInvalidIndex)
	}
	if !e.Valid() {
		return NeighborRecord{}, fmt.Errorf("%s: face %d edge %s: %w", methodNeighbor, id, e, ErrInvalidIndex)
	}
	return t.neighbors[id][e], nil
}

// Corners returns the three corner positions of face id in O, A, B order.
func (t *Table) Corners(id int) ([3]r3.Vector, error) {
	if id < 0 || id >= NumFaces {
		return [3]r3.Vector{}, fmt.Errorf("%s: face %d: %w", methodFace, id, ErrInvalidIndex)
	}
	v := t.faces[id].Vertices
	return [3]r3.Vector{t.vertices[v[0]], t.vertices[v[1]], t.vertices[v[2]]}, nil
}
