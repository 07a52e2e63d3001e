// SPDX-License-Identifier: MIT
// Package: GeoSeg/resolver
//
// crossing.go — edge crossing across sibling, parent and base seams.

package resolver

import (
	"fmt"

	"github.com/gasbank/GeoSeg/cell"
	"github.com/gasbank/GeoSeg/topology"
)

const (
	methodCrossEdge    = "CrossEdge"
	methodTranslate    = "Translate"
	methodClassify     = "Classify"
	methodAroundCorner = "AroundCorner"
)

// Crossing is the result of crossing an edge.
type Crossing struct {
	// Cell is the neighbor, at the same depth as the source.
	Cell cell.Cell
	// Edge is the label of the crossed edge on Cell.
	Edge topology.Edge
	// Map carries t on the source edge to t on Edge of Cell.
	Map topology.EdgeMap
}

// Kind classifies an edge of a cell by how it is resolved.
type Kind uint8

const (
	// BaseEdge is an edge of a base face, resolved by the topology table.
	BaseEdge Kind = iota
	// SiblingEdge borders another child of the same parent.
	SiblingEdge
	// ParentEdge lies on an edge of the parent and is resolved one level up.
	ParentEdge
)

// String returns "base", "sibling" or "parent".
func (k Kind) String() string {
	switch k {
	case BaseEdge:
		return "base"
	case SiblingEdge:
		return "sibling"
	case ParentEdge:
		return "parent"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Classify reports how edge e of c is resolved.
func Classify(c cell.Cell, e topology.Edge) (Kind, error) {
	if !e.Valid() {
		return 0, fmt.Errorf("%s: %v edge %s: %w", methodClassify, c, e, topology.ErrInvalidIndex)
	}
	return classify(c, e), nil
}

func classify(c cell.Cell, e topology.Edge) Kind {
	s, ok := c.Last()
	switch {
	case !ok:
		return BaseEdge
	case s == cell.Center, s.Corner() == e.Opposite():
		return SiblingEdge
	default:
		return ParentEdge
	}
}

// CrossEdge returns the cell across edge e of c, the label of the same edge
// on that cell and the coordinate map between the two frames.
//
// Returns ErrInvalidIndex if e is not one of O, A, B.
func CrossEdge(c cell.Cell, e topology.Edge) (Crossing, error) {
	if !e.Valid() {
		return Crossing{}, fmt.Errorf("%s: %v edge %s: %w", methodCrossEdge, c, e, topology.ErrInvalidIndex)
	}
	return cross(topology.Default(), c, e), nil
}

// cross assumes a valid edge label.
func cross(tb *topology.Table, c cell.Cell, e topology.Edge) Crossing {
	s, ok := c.Last()
	if !ok {
		rec, _ := tb.Neighbor(c.Face(), e)
		root, _ := cell.Root(rec.Face)
		return Crossing{Cell: root, Edge: rec.Edge, Map: rec.Map}
	}

	// parent is shallower than MaxDepth, so Child cannot fail below.
	parent, _ := c.Parent()
	switch {
	case s == cell.Center:
		sib, _ := parent.Child(cell.CornerSelector(e.Opposite()))
		return Crossing{Cell: sib, Edge: e, Map: topology.Reverse}
	case s.Corner() == e.Opposite():
		sib, _ := parent.Child(cell.Center)
		return Crossing{Cell: sib, Edge: e, Map: topology.Reverse}
	}

	up := cross(tb, parent, e)

	// Corner i is one end of the parent's edge e; follow that end through the
	// parent's map to find which corner of the neighbor it became.
	i := s.Corner()
	start, _ := e.Endpoints()
	us, ue := up.Edge.Endpoints()
	k := us
	if (i == start) == (up.Map == topology.Reverse) {
		k = ue
	}
	kid, _ := up.Cell.Child(cell.CornerSelector(k))

	return Crossing{Cell: kid, Edge: up.Edge, Map: up.Map}
}

// Neighbors returns the crossings of the three edges of c in O, A, B order.
func Neighbors(c cell.Cell) [3]Crossing {
	tb := topology.Default()
	var out [3]Crossing
	for _, e := range topology.Edges {
		out[e] = cross(tb, c, e)
	}
	return out
}

// Translate crosses edge e of c and maps the edge coordinate t into the
// neighbor's frame.
func Translate(c cell.Cell, e topology.Edge, t float64) (Crossing, float64, error) {
	x, err := CrossEdge(c, e)
	if err != nil {
		return Crossing{}, 0, fmt.Errorf("%s: %w", methodTranslate, err)
	}
	return x, x.Map.Apply(t), nil
}
