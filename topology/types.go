// SPDX-License-Identifier: MIT
// Package: GeoSeg/topology
//
// types.go — labels, flags and records of the base icosahedron table.

package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology operations.
var (
	// ErrInvalidIndex indicates a face, vertex or edge id outside its range.
	ErrInvalidIndex = errors.New("topology: index out of range")

	// ErrMalformedTopology indicates a table whose records are inconsistent
	// (broken back-references, wrong winding, degenerate faces, ...).
	ErrMalformedTopology = errors.New("topology: malformed topology")
)

// Table dimensions of the icosahedron.
const (
	NumVertices = 12
	NumFaces    = 20
	NumEdges    = 30
)

// Edge names one of the three edges of a triangle by the corner it is
// opposite to.
type Edge uint8

const (
	EdgeO Edge = iota // opposite corner 0, runs 1→2
	EdgeA             // opposite corner 1, runs 0→2
	EdgeB             // opposite corner 2, runs 0→1
)

// Edges lists the three labels in slot order.
var Edges = [3]Edge{EdgeO, EdgeA, EdgeB}

// Valid reports whether e is one of O, A, B.
func (e Edge) Valid() bool { return e <= EdgeB }

// String returns "O", "A", "B" or "Edge(n)".
func (e Edge) String() string {
	switch e {
	case EdgeO:
		return "O"
	case EdgeA:
		return "A"
	case EdgeB:
		return "B"
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// Endpoints returns the corner positions at t=0 and t=1 of edge e.
// The result is undefined for an invalid label.
func (e Edge) Endpoints() (start, end int) {
	switch e {
	case EdgeO:
		return 1, 2
	case EdgeA:
		return 0, 2
	default:
		return 0, 1
	}
}

// Opposite returns the corner position edge e does not touch.
func (e Edge) Opposite() int { return int(e) }

// EdgeOpposite returns the edge opposite corner position pos (0..2).
func EdgeOpposite(pos int) Edge { return Edge(pos) }

// Origin is the origin variant of a neighbor row: where the neighbor's
// corner 0 lies in the current face's frame.
type Origin uint8

const (
	OriginO  Origin = iota // neighbor origin is this face's corner 0
	OriginA                // neighbor origin is this face's corner 1
	OriginB                // neighbor origin is this face's corner 2
	OriginOp               // neighbor origin is corner 0 mirrored across edge O
	OriginAp               // neighbor origin is corner 1 mirrored across edge A
	OriginBp               // neighbor origin is corner 2 mirrored across edge B
)

// Primed reports whether the neighbor's origin is the mirrored apex rather
// than a shared corner.
func (o Origin) Primed() bool { return o >= OriginOp && o <= OriginBp }

// Corner returns the corner position (0..2) the variant refers to.
func (o Origin) Corner() int { return int(o % 3) }

// primedOrigin returns the primed variant for crossing edge e.
func primedOrigin(e Edge) Origin { return OriginOp + Origin(e) }

// String returns the table spelling of the variant.
func (o Origin) String() string {
	switch o {
	case OriginO:
		return "O"
	case OriginA:
		return "A"
	case OriginB:
		return "B"
	case OriginOp:
		return "Op"
	case OriginAp:
		return "Ap"
	case OriginBp:
		return "Bp"
	default:
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
}

// Winding is the rotational order of a triangle's corners as recorded by the
// table (left-handed convention of the source data).
type Winding uint8

const (
	CCW Winding = iota
	CW
)

// Flip returns the opposite winding.
func (w Winding) Flip() Winding {
	if w == CW {
		return CCW
	}
	return CW
}

// String returns "CW" or "CCW".
func (w Winding) String() string {
	if w == CW {
		return "CW"
	}
	return "CCW"
}

// EdgeMap carries an edge-parametric coordinate from one frame of a shared
// edge into the other.
type EdgeMap uint8

const (
	Identity EdgeMap = iota // t ↦ t
	Reverse                 // t ↦ 1−t
)

// Apply maps t into the target frame.
func (m EdgeMap) Apply(t float64) float64 {
	if m == Reverse {
		return 1 - t
	}
	return t
}

// Compose returns the map applying n first and then m.
func (m EdgeMap) Compose(n EdgeMap) EdgeMap { return m ^ n }

// Inverse returns the map undoing m. Both maps are involutions.
func (m EdgeMap) Inverse() EdgeMap { return m }

// String returns "identity" or "reverse".
func (m EdgeMap) String() string {
	if m == Reverse {
		return "reverse"
	}
	return "identity"
}

// Face is one base triangle.
type Face struct {
	ID       int
	Vertices [3]int
	Winding  Winding
}

// Link is one row of the neighbor table as shipped: the neighbor face id,
// the edge of the current face the row describes, the origin variant and
// the neighbor's winding.
type Link struct {
	Face    int
	Edge    Edge
	Origin  Origin
	Winding Winding
}

// NeighborRecord is a validated neighbor row with the derived fields the
// resolver needs.
type NeighborRecord struct {
	// Face is the neighboring face id.
	Face int
	// Edge is the label of the shared edge on the neighbor.
	Edge Edge
	// Origin is the shipped origin variant.
	Origin Origin
	// Winding is the neighbor's winding.
	Winding Winding
	// Map carries t on the current face's edge to t on the neighbor's edge.
	Map EdgeMap
}
